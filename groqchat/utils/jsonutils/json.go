// groqchat/utils/jsonutils/json.go
package jsonutils

import (
	"encoding/json"
)

// ToJSON renders v as two-space indented JSON for terminal output.
func ToJSON(v any) (string, error) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
