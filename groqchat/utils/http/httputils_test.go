package httputils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostJSONWithAuth(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"echo": body["ping"]})
	}))
	defer server.Close()

	var resp struct {
		Echo string `json:"echo"`
	}
	err := PostJSONWithAuth(context.Background(), server.Client(), server.URL, "secret", map[string]string{"ping": "pong"}, &resp)
	req.NoError(err)
	req.Equal("pong", resp.Echo)
}

func TestPostJSON_StatusError(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer server.Close()

	err := PostJSON(context.Background(), nil, server.URL, map[string]string{}, nil)
	var statusErr *StatusError
	req.True(errors.As(err, &statusErr))
	req.Equal(http.StatusTooManyRequests, statusErr.Code)
	req.Contains(statusErr.Body, "slow down")
}

func TestGetJSON(t *testing.T) {
	req := require.New(t)
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.Write([]byte(`[1,2,3]`))
	}))
	defer server.Close()

	var got []int
	req.NoError(GetJSON(context.Background(), server.Client(), server.URL, &got))
	req.Equal([]int{1, 2, 3}, got)
	req.Equal(http.MethodGet, method)
}
