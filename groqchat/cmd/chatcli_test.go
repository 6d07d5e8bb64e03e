package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/utils/color"
	"groqchat/groqchat/utils/types"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves canned chat API answers and records the last history query.
type fakeAPI struct {
	*httptest.Server
	historyQuery url.Values
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	r := chi.NewRouter()
	r.Post("/chat/new", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(types.NewConversationResponse{ConversationID: "conv-1", Message: "ok"})
	})
	r.Post("/chat/{id}/send", func(w http.ResponseWriter, r *http.Request) {
		var req types.SendMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if strings.TrimSpace(req.Content) == "boom" {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(types.ErrorResponse{Detail: "completion service error: rate limit"})
			return
		}
		json.NewEncoder(w).Encode(models.Message{
			ConversationID: chi.URLParam(r, "id"),
			Sender:         models.SenderAssistant,
			Content:        "echo: " + req.Content,
		})
	})
	r.Get("/chat/{id}/history", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(types.ErrorResponse{Detail: "not found: conversation missing"})
			return
		}
		api.historyQuery = r.URL.Query()
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		json.NewEncoder(w).Encode([]models.Message{
			{ConversationID: "c1", Sender: models.SenderUser, Content: "hello", Timestamp: at},
			{ConversationID: "c1", Sender: models.SenderAssistant, Content: "hi there", Timestamp: at.Add(time.Second)},
		})
	})
	api.Server = httptest.NewServer(r)
	t.Cleanup(api.Close)
	return api
}

func TestRun_New(t *testing.T) {
	color.Disable()
	srv := newFakeAPI(t)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), newAPIClient(srv.URL), []string{"new"}, nil, &out))
	require.Equal(t, "conv-1\n", out.String())
}

func TestRun_ChatLoop(t *testing.T) {
	color.Disable()
	srv := newFakeAPI(t)
	var out bytes.Buffer
	in := strings.NewReader("hello\n\nboom\nquit\nnever sent\n")

	require.NoError(t, run(context.Background(), newAPIClient(srv.URL), []string{"chat", "c1"}, in, &out))
	require.Contains(t, out.String(), "assistant> echo: hello")
	require.Contains(t, out.String(), "503: completion service error: rate limit")
	require.Contains(t, out.String(), "Goodbye!")
	require.NotContains(t, out.String(), "never sent")
}

func TestRun_History(t *testing.T) {
	color.Disable()
	srv := newFakeAPI(t)

	t.Run("table", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), newAPIClient(srv.URL), []string{"history", "c1", "1", "5"}, nil, &out))
		require.Contains(t, out.String(), "hello")
		require.Contains(t, out.String(), "hi there")
		require.Contains(t, strings.ToUpper(out.String()), "SENDER")
		require.Equal(t, "1", srv.historyQuery.Get("skip"))
		require.Equal(t, "5", srv.historyQuery.Get("limit"))
	})
	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), newAPIClient(srv.URL), []string{"history", "c1", "1", "5", "--json"}, nil, &out))
		var msgs []models.Message
		require.NoError(t, json.Unmarshal(out.Bytes(), &msgs))
		require.Len(t, msgs, 2)
	})
	t.Run("not found", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), newAPIClient(srv.URL), []string{"history", "missing"}, nil, &out))
		require.Equal(t, "No messages stored for conversation missing\n", out.String())
	})
	t.Run("bad number", func(t *testing.T) {
		err := run(context.Background(), newAPIClient(srv.URL), []string{"history", "c1", "x"}, nil, &bytes.Buffer{})
		require.Error(t, err)
	})
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(context.Background(), newAPIClient(""), nil, nil, &out))
	require.Contains(t, out.String(), "chatcli usage")
	require.Error(t, run(context.Background(), newAPIClient(""), []string{"bogus"}, nil, &out))
}

func TestNewAPIClient_DefaultURL(t *testing.T) {
	require.Equal(t, defaultAPIURL, newAPIClient("").baseURL)
	require.Equal(t, "http://example:9000", newAPIClient("http://example:9000/").baseURL)
}

func TestAPIError(t *testing.T) {
	srv := newFakeAPI(t)
	_, err := newAPIClient(srv.URL).History(context.Background(), "missing", 0, 100)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Code)
	require.Equal(t, "not found: conversation missing", apiErr.Detail)
	require.True(t, isNotFound(err))
	require.False(t, isNotFound(errors.New("connection refused")))
}
