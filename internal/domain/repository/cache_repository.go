package repository

import (
	"context"
	"time"

	"github.com/smart-jordan/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetSensorSnapshot получает последний снимок датчиков
	GetSensorSnapshot(ctx context.Context) (*domain.SensorSnapshot, error)

	// SetSensorSnapshot сохраняет снимок датчиков
	SetSensorSnapshot(ctx context.Context, snapshot *domain.SensorSnapshot, ttl time.Duration) error

	// GetWeather получает погоду для точки
	GetWeather(ctx context.Context, p domain.Point) (*domain.Weather, error)

	// SetWeather сохраняет погоду для точки
	SetWeather(ctx context.Context, p domain.Point, w *domain.Weather, ttl time.Duration) error
}
