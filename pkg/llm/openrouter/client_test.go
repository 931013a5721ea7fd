package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Ask(t *testing.T) {
	var got chatCompletionsRequest
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "resumeparser", r.Header.Get("X-Title"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		require.NoError(t, json.Unmarshal(body, &raw))
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"[]"}}]}`))
	}))
	defer srv.Close()

	c := New("key", srv.URL+"/", "", "resumeparser", "")
	reply, err := c.Ask(context.Background(), "sys", "user")

	require.NoError(t, err)
	assert.Equal(t, "[]", reply)
	assert.Equal(t, DefaultModel, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Content)
	assert.Contains(t, raw, "temperature")
}

func TestClient_AskErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limit"}`))
	}))
	defer srv.Close()

	_, err := New("", srv.URL, "m", "", "").Ask(context.Background(), "s", "u")
	assert.EqualError(t, err, "openrouter api key is empty")

	_, err = New("key", srv.URL, "m", "", "").Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openrouter http 429")
}

func TestClient_AskNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := New("key", srv.URL, "m", "", "").Ask(context.Background(), "s", "u")
	assert.EqualError(t, err, "no choices returned by model")
}
