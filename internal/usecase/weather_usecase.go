package usecase

import (
	"context"
	"time"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/pkg/utils"
	"go.uber.org/zap"
)

// WeatherUseCase возвращает текущую погоду с кешем и запасными значениями
type WeatherUseCase struct {
	weatherRepo repository.WeatherRepository
	cacheRepo   repository.CacheRepository
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewWeatherUseCase создает новый экземпляр WeatherUseCase
func NewWeatherUseCase(
	weatherRepo repository.WeatherRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *WeatherUseCase {
	return &WeatherUseCase{
		weatherRepo: weatherRepo,
		cacheRepo:   cacheRepo,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Current возвращает погоду для точки. nil означает, что геолокация недоступна,
// тогда используется центр Аммана. Сбой внешнего сервиса не является ошибкой.
func (uc *WeatherUseCase) Current(ctx context.Context, p *domain.Point) (*domain.Weather, error) {
	point := domain.FallbackLocation
	if p != nil {
		if !utils.ValidateCoordinates(p.Lat, p.Lon) {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"lat": p.Lat,
				"lon": p.Lon,
			})
		}
		point = *p
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetWeather(ctx, point)
		if err != nil {
			uc.logger.Warn("Failed to get weather from cache", zap.Error(err))
		}
		if cached != nil {
			uc.logger.Debug("Weather fetched from cache")
			// Ключ кеша округлен, в ответе остается точка запроса
			cached.Lat, cached.Lon = point.Lat, point.Lon
			return cached, nil
		}
	}

	w, err := uc.weatherRepo.Current(ctx, point)
	if err != nil {
		uc.logger.Warn("Weather lookup failed, using fallback values",
			zap.Float64("lat", point.Lat),
			zap.Float64("lon", point.Lon),
			zap.Error(err))
		return domain.FallbackWeather(point), nil
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetWeather(ctx, point, w, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache weather", zap.Error(err))
		}
	}

	return w, nil
}
