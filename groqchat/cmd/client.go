// groqchat/cmd/client.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"groqchat/groqchat/sources/models"
	httputils "groqchat/groqchat/utils/http"
	"groqchat/groqchat/utils/types"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultAPIURL = "http://localhost:8000"

// apiClient talks to the chat HTTP API.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *apiClient) NewConversation(ctx context.Context) (types.NewConversationResponse, error) {
	var resp types.NewConversationResponse
	err := httputils.PostJSON(ctx, c.http, c.baseURL+"/chat/new", struct{}{}, &resp)
	return resp, apiError(err)
}

func (c *apiClient) Send(ctx context.Context, conversationID, content string) (models.Message, error) {
	var msg models.Message
	endpoint := fmt.Sprintf("%s/chat/%s/send", c.baseURL, url.PathEscape(conversationID))
	err := httputils.PostJSON(ctx, c.http, endpoint, types.SendMessageRequest{Content: content}, &msg)
	return msg, apiError(err)
}

func (c *apiClient) History(ctx context.Context, conversationID string, skip, limit int) ([]models.Message, error) {
	var msgs []models.Message
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/chat/%s/history?%s", c.baseURL, url.PathEscape(conversationID), q.Encode())
	err := httputils.GetJSON(ctx, c.http, endpoint, &msgs)
	return msgs, apiError(err)
}

// APIError is a non-2xx answer carrying the server's detail message.
type APIError struct {
	Code   int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Detail)
}

// apiError surfaces the server's detail message when there is one.
func apiError(err error) error {
	var statusErr *httputils.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	var body types.ErrorResponse
	if json.Unmarshal([]byte(statusErr.Body), &body) == nil && body.Detail != "" {
		return &APIError{Code: statusErr.Code, Detail: body.Detail}
	}
	return err
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
