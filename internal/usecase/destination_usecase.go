package usecase

import (
	"context"
	"fmt"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/usecase/dto"
	"go.uber.org/zap"
)

// FilterDestinations возвращает направления, удовлетворяющие всем активным фильтрам,
// в порядке каталога. Пустой результат не является ошибкой.
func FilterDestinations(list []domain.Destination, criteria domain.FilterCriteria) []domain.Destination {
	result := make([]domain.Destination, 0, len(list))
	for _, d := range list {
		if criteria.Matches(d) {
			result = append(result, d)
		}
	}
	return result
}

// DestinationUseCase обрабатывает бизнес-логику каталога направлений
type DestinationUseCase struct {
	destinationRepo repository.DestinationRepository
	logger          *zap.Logger
}

// NewDestinationUseCase создает новый экземпляр DestinationUseCase
func NewDestinationUseCase(
	destinationRepo repository.DestinationRepository,
	logger *zap.Logger,
) *DestinationUseCase {
	return &DestinationUseCase{
		destinationRepo: destinationRepo,
		logger:          logger,
	}
}

// List возвращает отфильтрованный каталог
func (uc *DestinationUseCase) List(ctx context.Context, criteria domain.FilterCriteria) (*dto.DestinationListResponse, error) {
	all, err := uc.destinationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	filtered := FilterDestinations(all, criteria)

	uc.logger.Debug("Destinations filtered",
		zap.Any("criteria", criteria),
		zap.Int("total", len(filtered)),
		zap.Int("catalogue", len(all)),
	)

	return &dto.DestinationListResponse{
		Destinations: filtered,
		Total:        len(filtered),
		Catalogue:    len(all),
	}, nil
}

// GetByID возвращает направление по идентификатору
func (uc *DestinationUseCase) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	d, err := uc.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get destination %s: %w", id, err)
	}
	if d == nil {
		return nil, errors.ErrDestinationNotFound.WithDetails(map[string]interface{}{"id": id})
	}
	return d, nil
}

// FilterOptions возвращает допустимые значения фильтров
func (uc *DestinationUseCase) FilterOptions() *dto.FilterOptionsResponse {
	return &dto.FilterOptionsResponse{
		Categories:      domain.Categories,
		Difficulties:    domain.Difficulties,
		Budgets:         domain.Budgets,
		Accessibilities: domain.Accessibilities,
	}
}
