package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/ai"
	otelMocks "frontdesk/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
)

type verdict struct {
	Anomaly bool   `json:"anomaly"`
	Insight string `json:"insight"`
}

func newClient(endpoint string) ai.Client {
	cfg := &config.Config{}
	cfg.External.AI.Endpoint = endpoint
	cfg.External.AI.APIKey = "sk-test"
	cfg.External.AI.Model = "gpt-4o-mini"
	cfg.External.AI.TimeoutSeconds = 5

	return ai.New(cfg, otelMocks.NewOtel())
}

func answer(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}
}

func TestCompleteJSON(t *testing.T) {
	t.Run("plain json answer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "gpt-4o-mini", body["model"])

			answer(`{"anomaly":true,"insight":"revenue fell"}`)(w, r)
		}))
		defer server.Close()

		var got verdict
		assert.NoError(t, newClient(server.URL).CompleteJSON(context.Background(), "system", "prompt", &got))
		assert.True(t, got.Anomaly)
		assert.Equal(t, "revenue fell", got.Insight)
	})

	t.Run("fenced answer", func(t *testing.T) {
		server := httptest.NewServer(answer("```json\n{\"anomaly\":false,\"insight\":\"steady\"}\n```"))
		defer server.Close()

		var got verdict
		assert.NoError(t, newClient(server.URL).CompleteJSON(context.Background(), "system", "prompt", &got))
		assert.Equal(t, "steady", got.Insight)
	})

	t.Run("upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		var got verdict
		assert.Error(t, newClient(server.URL).CompleteJSON(context.Background(), "system", "prompt", &got))
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		var got verdict
		assert.ErrorIs(t, newClient(server.URL).CompleteJSON(context.Background(), "system", "prompt", &got), ai.ErrEmptyAnswer)
	})

	t.Run("prose instead of json", func(t *testing.T) {
		server := httptest.NewServer(answer("Revenue looks fine."))
		defer server.Close()

		var got verdict
		assert.Error(t, newClient(server.URL).CompleteJSON(context.Background(), "system", "prompt", &got))
	})

	t.Run("not configured", func(t *testing.T) {
		var got verdict
		assert.ErrorIs(t, ai.New(&config.Config{}, otelMocks.NewOtel()).CompleteJSON(context.Background(), "s", "p", &got), ai.ErrNotConfigured)
	})
}
