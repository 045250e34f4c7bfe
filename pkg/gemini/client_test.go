package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carcare-backend/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath string
		var gotReq gemini.GenerateRequest

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"candidates": [
					{"content": {"parts": [{"text": "A dead battery usually needs a jump start."}]}}
				]
			}`))
		}))
		defer ts.Close()

		client := gemini.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "battery dead"}}}},
			GenerationConfig: &gemini.GenerationConfig{
				MaxOutputTokens: 150,
				Temperature:     0.7,
				TopK:            40,
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Candidates, 1)
		assert.Equal(t, "A dead battery usually needs a jump start.", resp.Candidates[0].Content.Parts[0].Text)
		assert.Contains(t, gotPath, ":generateContent")
		require.NotNil(t, gotReq.GenerationConfig)
		assert.Equal(t, 40, gotReq.GenerationConfig.TopK)
	})

	t.Run("API Error Status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "rate limited"}`))
		}))
		defer ts.Close()

		client := gemini.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("Malformed Body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`not json`))
		}))
		defer ts.Close()

		client := gemini.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{})
		require.Error(t, err)
	})

	t.Run("Network Failure", func(t *testing.T) {
		client := gemini.NewClient("test-key")
		client.SetAPIURL("http://127.0.0.1:1")

		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{})
		require.Error(t, err)
	})
}
