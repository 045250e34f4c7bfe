package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carcare-backend/pkg/openai"
)

func TestChatCompletion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotAuth string
		var gotReq openai.ChatRequest

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.Equal(t, "/chat/completions", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"model": "gpt-4o-mini",
				"choices": [
					{"index": 0, "message": {"role": "assistant", "content": "Try a jump start."}}
				]
			}`))
		}))
		defer ts.Close()

		client := openai.NewClient("test-key")
		client.SetBaseURL(ts.URL)

		resp, err := client.ChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.Message{{Role: "user", Content: "battery dead"}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, "Try a jump start.", resp.Choices[0].Message.Content)
		assert.Equal(t, "Bearer test-key", gotAuth)
		// client fills in the default model
		assert.Equal(t, openai.DefaultModel, gotReq.Model)
	})

	t.Run("API Error Status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "bad key"}}`))
		}))
		defer ts.Close()

		client := openai.NewClient("bad-key")
		client.SetBaseURL(ts.URL)

		_, err := client.ChatCompletion(context.Background(), openai.ChatRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("Malformed Body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{`))
		}))
		defer ts.Close()

		client := openai.NewClient("test-key")
		client.SetBaseURL(ts.URL)

		_, err := client.ChatCompletion(context.Background(), openai.ChatRequest{})
		require.Error(t, err)
	})
}
