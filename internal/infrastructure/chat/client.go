package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/smart-jordan/internal/config"
	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"go.uber.org/zap"
)

// maxErrorBody - сколько байт тела ошибки попадает в сообщение
const maxErrorBody = 512

type client struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// NewChatClient создает клиент сервиса ответов гида.
// Таймаут задается контекстом вызова, а не http.Client.
func NewChatClient(cfg *config.ChatConfig, logger *zap.Logger) repository.ChatCompletionClient {
	return &client{
		httpClient: &http.Client{},
		endpoint:   cfg.Endpoint,
		logger:     logger,
	}
}

// Complete отправляет всю стенограмму и возвращает ответ гида
func (c *client) Complete(ctx context.Context, history []domain.ChatTurn) (string, error) {
	body, err := json.Marshal(domain.ChatCompletionRequest{History: history})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.Debug("Calling chat service",
		zap.String("endpoint", c.endpoint),
		zap.Int("history_len", len(history)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("Chat service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(errBody)))
		return "", fmt.Errorf("chat service error: status %d, body: %s", resp.StatusCode, string(errBody))
	}

	var chatResp domain.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if chatResp.Response == "" {
		return "", fmt.Errorf("chat service returned empty response")
	}

	return chatResp.Response, nil
}
