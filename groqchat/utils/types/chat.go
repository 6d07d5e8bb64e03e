// groqchat/utils/types/chat.go
package types

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type NewConversationResponse struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

type ArchiveResponse struct {
	Key string `json:"key"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HistoryQuery holds the skip/limit paging parameters of the history endpoint.
type HistoryQuery struct {
	Skip  int `validate:"gte=0"`
	Limit int `validate:"gte=1,lte=200"`
}

const (
	DefaultHistorySkip  = 0
	DefaultHistoryLimit = 100
)

// ParseHistoryQuery applies defaults for absent parameters and validates bounds.
func ParseHistoryQuery(values url.Values) (HistoryQuery, error) {
	q := HistoryQuery{Skip: DefaultHistorySkip, Limit: DefaultHistoryLimit}
	var err error
	if raw := values.Get("skip"); raw != "" {
		if q.Skip, err = strconv.Atoi(raw); err != nil {
			return HistoryQuery{}, fmt.Errorf("skip must be an integer")
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if q.Limit, err = strconv.Atoi(raw); err != nil {
			return HistoryQuery{}, fmt.Errorf("limit must be an integer")
		}
	}
	if err := validate.Struct(q); err != nil {
		return HistoryQuery{}, err
	}
	return q, nil
}

func ValidateSendMessage(req SendMessageRequest) error {
	return validate.Struct(req)
}
