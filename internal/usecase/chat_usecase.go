package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/pkg/errors"
	"go.uber.org/zap"
)

// ChatUseCase пересылает стенограмму во внешний сервис гида
type ChatUseCase struct {
	sessions repository.ChatSessionRepository
	client   repository.ChatCompletionClient
	timeout  time.Duration
	logger   *zap.Logger
}

// NewChatUseCase создает новый экземпляр ChatUseCase
func NewChatUseCase(
	sessions repository.ChatSessionRepository,
	client repository.ChatCompletionClient,
	timeout time.Duration,
	logger *zap.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		sessions: sessions,
		client:   client,
		timeout:  timeout,
		logger:   logger,
	}
}

// Open создает сессию с приветствием
func (uc *ChatUseCase) Open(ctx context.Context) (*domain.ChatSession, error) {
	session, err := uc.sessions.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create chat session: %w", err)
	}

	uc.logger.Info("Chat session opened", zap.String("session_id", session.ID.String()))
	return session, nil
}

// Transcript возвращает текущую стенограмму
func (uc *ChatUseCase) Transcript(ctx context.Context, id uuid.UUID) (*domain.ChatSession, error) {
	return uc.sessions.Get(ctx, id)
}

// Submit отправляет сообщение пользователя и дожидается ответа гида.
// Пустой ввод ничего не меняет. Ошибка сервиса превращается в сообщение бота с индикатором.
func (uc *ChatUseCase) Submit(ctx context.Context, id uuid.UUID, text string) (*domain.ChatSession, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return uc.sessions.Get(ctx, id)
	}

	history, err := uc.sessions.BeginTurn(ctx, id, domain.ChatMessage{
		Sender:    domain.SenderUser,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	// Отключение клиента не отменяет уже начатый ход
	callCtx := context.WithoutCancel(ctx)
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := uc.client.Complete(callCtx, domain.HistoryFromTranscript(history))

	botMsg := domain.ChatMessage{Sender: domain.SenderBot, Text: reply}
	if err != nil {
		uc.logger.Warn("Chat completion failed",
			zap.String("session_id", id.String()),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		botMsg.Text = fmt.Sprintf("%s Error: %v", domain.ChatErrorIndicator, err)
	} else {
		uc.logger.Debug("Chat completion received",
			zap.String("session_id", id.String()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("history_len", len(history)))
	}
	botMsg.CreatedAt = time.Now().UTC()

	session, err := uc.sessions.EndTurn(context.WithoutCancel(ctx), id, botMsg)
	if err != nil {
		if stderrors.Is(err, errors.ErrChatSessionNotFound) {
			uc.logger.Info("Chat session closed before reply, discarding",
				zap.String("session_id", id.String()))
		}
		return nil, err
	}

	return session, nil
}

// Close удаляет сессию
func (uc *ChatUseCase) Close(ctx context.Context, id uuid.UUID) error {
	if err := uc.sessions.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Chat session closed", zap.String("session_id", id.String()))
	return nil
}

// ExpireIdle закрывает сессии, брошенные дольше ttl (страница закрыта без DELETE)
func (uc *ChatUseCase) ExpireIdle(ctx context.Context, ttl time.Duration) int {
	n, err := uc.sessions.ExpireIdle(ctx, time.Now().UTC().Add(-ttl))
	if err != nil {
		uc.logger.Warn("Failed to expire idle chat sessions", zap.Error(err))
		return 0
	}
	if n > 0 {
		uc.logger.Info("Idle chat sessions expired",
			zap.Int("count", n),
			zap.Duration("ttl", ttl))
	}
	return n
}
