package repository

import (
	"context"

	"github.com/smart-jordan/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// ReadLatest возвращает до count последних сообщений, от новых к старым
	ReadLatest(ctx context.Context, stream string, count int64) ([]domain.StreamMessage, error)
}
