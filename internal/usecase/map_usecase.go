package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/smart-jordan/internal/config"
	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/pkg/utils"
	"github.com/smart-jordan/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapUseCase отдает маркеры направлений и настройки карты
type MapUseCase struct {
	destinationRepo repository.DestinationRepository
	mapConfig       config.MapConfig
	logger          *zap.Logger
}

// NewMapUseCase создает новый экземпляр MapUseCase
func NewMapUseCase(
	destinationRepo repository.DestinationRepository,
	mapConfig config.MapConfig,
	logger *zap.Logger,
) *MapUseCase {
	return &MapUseCase{
		destinationRepo: destinationRepo,
		mapConfig:       mapConfig,
		logger:          logger,
	}
}

// Markers возвращает по одному маркеру на направление
func (uc *MapUseCase) Markers(ctx context.Context) (*dto.MapMarkersResponse, error) {
	all, err := uc.destinationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	markers := make([]dto.MapMarker, 0, len(all))
	for _, d := range all {
		markers = append(markers, toMarker(d))
	}

	return &dto.MapMarkersResponse{
		Markers:     markers,
		TileURL:     uc.mapConfig.TileURL,
		Attribution: uc.mapConfig.Attribution,
	}, nil
}

// Nearest возвращает направления по возрастанию расстояния от точки
func (uc *MapUseCase) Nearest(ctx context.Context, p domain.Point, limit int) ([]dto.NearestDestination, error) {
	if !utils.ValidateCoordinates(p.Lat, p.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	all, err := uc.destinationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	result := make([]dto.NearestDestination, 0, len(all))
	for _, d := range all {
		result = append(result, dto.NearestDestination{
			MapMarker:  toMarker(d),
			DistanceKm: utils.DistanceKm(p.Lat, p.Lon, d.Location.Lat, d.Location.Lon),
		})
	}

	slices.SortStableFunc(result, func(a, b dto.NearestDestination) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}

	uc.logger.Debug("Nearest destinations computed",
		zap.Float64("lat", p.Lat),
		zap.Float64("lon", p.Lon),
		zap.Int("count", len(result)))

	return result, nil
}

func toMarker(d domain.Destination) dto.MapMarker {
	return dto.MapMarker{
		ID:       d.ID,
		Name:     d.Name,
		Category: d.Category,
		Lat:      d.Location.Lat,
		Lon:      d.Location.Lon,
	}
}
