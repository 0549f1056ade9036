package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smart-jordan/internal/config"
	"github.com/smart-jordan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Complete(t *testing.T) {
	logger := zap.NewNop()
	history := []domain.ChatTurn{
		{Role: domain.RoleModel, Parts: []domain.ChatPart{{Text: domain.ChatGreeting}}},
		{Role: domain.RoleUser, Parts: []domain.ChatPart{{Text: "What to pack for Wadi Rum?"}}},
	}

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req domain.ChatCompletionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, history, req.History)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(domain.ChatCompletionResponse{Response: "A warm jacket for the night."})
		}))
		defer server.Close()

		client := NewChatClient(&config.ChatConfig{Endpoint: server.URL}, logger)

		reply, err := client.Complete(context.Background(), history)
		require.NoError(t, err)
		assert.Equal(t, "A warm jacket for the night.", reply)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		client := NewChatClient(&config.ChatConfig{Endpoint: server.URL}, logger)

		_, err := client.Complete(context.Background(), history)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
		assert.Contains(t, err.Error(), "upstream unavailable")
	})

	t.Run("empty response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response":""}`))
		}))
		defer server.Close()

		client := NewChatClient(&config.ChatConfig{Endpoint: server.URL}, logger)

		_, err := client.Complete(context.Background(), history)
		assert.Error(t, err)
	})

	t.Run("context deadline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewChatClient(&config.ChatConfig{Endpoint: server.URL}, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Complete(ctx, history)
		assert.Error(t, err)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		client := NewChatClient(&config.ChatConfig{Endpoint: "http://127.0.0.1:1/api/chat"}, logger)

		_, err := client.Complete(context.Background(), history)
		assert.Error(t, err)
	})
}
