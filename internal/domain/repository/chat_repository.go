package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smart-jordan/internal/domain"
)

// ChatSessionRepository хранит стенограммы сессий чата
type ChatSessionRepository interface {
	// Create создаёт сессию с приветственным сообщением
	Create(ctx context.Context) (*domain.ChatSession, error)

	// Get возвращает копию сессии
	Get(ctx context.Context, id uuid.UUID) (*domain.ChatSession, error)

	// BeginTurn добавляет сообщение пользователя и выставляет флаг composing.
	// Возвращает стенограмму для отправки. Если сессия уже ждёт ответа - ErrChatBusy.
	BeginTurn(ctx context.Context, id uuid.UUID, msg domain.ChatMessage) ([]domain.ChatMessage, error)

	// EndTurn добавляет ответ бота и снимает флаг composing
	EndTurn(ctx context.Context, id uuid.UUID, msg domain.ChatMessage) (*domain.ChatSession, error)

	// Delete удаляет сессию; поздний ответ для неё будет отброшен
	Delete(ctx context.Context, id uuid.UUID) error

	// ExpireIdle удаляет сессии без активности с момента cutoff. Сессии, ждущие ответа, остаются.
	ExpireIdle(ctx context.Context, cutoff time.Time) (int, error)
}

// ChatCompletionClient - внешний сервис, генерирующий ответы гида
type ChatCompletionClient interface {
	Complete(ctx context.Context, history []domain.ChatTurn) (string, error)
}
