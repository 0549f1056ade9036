package repository

import (
	"context"

	"github.com/smart-jordan/internal/domain"
)

// DestinationRepository - каталог направлений
type DestinationRepository interface {
	// List возвращает весь каталог в исходном порядке
	List(ctx context.Context) ([]domain.Destination, error)

	// GetByID возвращает направление или nil, если не найдено
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
}
