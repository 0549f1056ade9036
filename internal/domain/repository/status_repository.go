package repository

import (
	"context"

	"github.com/smart-jordan/internal/domain"
)

// StatusRepository хранит отметки status check
type StatusRepository interface {
	Create(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]domain.StatusCheck, error)
}
