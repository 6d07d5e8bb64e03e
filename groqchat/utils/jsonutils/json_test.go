package jsonutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	encoded, err := ToJSON(map[string]string{"key": "value"})
	require.NoError(t, err)
	require.Equal(t, "{\n  \"key\": \"value\"\n}", encoded)

	_, err = ToJSON(make(chan int))
	require.Error(t, err)
}
