package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/pkg/errors"
	"go.uber.org/zap"
)

const statusListLimit = 1000

// StatusUseCase сохраняет отметки клиентов о доступности API
type StatusUseCase struct {
	statusRepo repository.StatusRepository
	logger     *zap.Logger
}

// NewStatusUseCase создает новый экземпляр StatusUseCase
func NewStatusUseCase(statusRepo repository.StatusRepository, logger *zap.Logger) *StatusUseCase {
	return &StatusUseCase{
		statusRepo: statusRepo,
		logger:     logger,
	}
}

// Create сохраняет отметку клиента
func (uc *StatusUseCase) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	check := &domain.StatusCheck{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := uc.statusRepo.Create(ctx, check); err != nil {
		uc.logger.Error("Failed to save status check",
			zap.String("client_name", clientName),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return check, nil
}

// List возвращает сохраненные отметки
func (uc *StatusUseCase) List(ctx context.Context) ([]domain.StatusCheck, error) {
	checks, err := uc.statusRepo.List(ctx, statusListLimit)
	if err != nil {
		uc.logger.Error("Failed to list status checks", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return checks, nil
}
