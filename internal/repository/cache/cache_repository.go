package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"go.uber.org/zap"
)

const sensorSnapshotKey = "sensor:current"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetSensorSnapshot получает последний снимок датчиков из кеша
func (r *cacheRepository) GetSensorSnapshot(ctx context.Context) (*domain.SensorSnapshot, error) {
	var snapshot domain.SensorSnapshot
	found, err := r.getJSON(ctx, sensorSnapshotKey, &snapshot)
	if err != nil || !found {
		return nil, err
	}
	return &snapshot, nil
}

// SetSensorSnapshot сохраняет снимок датчиков в кеше
func (r *cacheRepository) SetSensorSnapshot(ctx context.Context, snapshot *domain.SensorSnapshot, ttl time.Duration) error {
	return r.setJSON(ctx, sensorSnapshotKey, snapshot, ttl)
}

// GetWeather получает погоду для точки из кеша
func (r *cacheRepository) GetWeather(ctx context.Context, p domain.Point) (*domain.Weather, error) {
	var w domain.Weather
	found, err := r.getJSON(ctx, weatherKey(p), &w)
	if err != nil || !found {
		return nil, err
	}
	return &w, nil
}

// SetWeather сохраняет погоду для точки в кеше
func (r *cacheRepository) SetWeather(ctx context.Context, p domain.Point, w *domain.Weather, ttl time.Duration) error {
	return r.setJSON(ctx, weatherKey(p), w, ttl)
}

// weatherKey - координаты округляются до ~1 км, соседние запросы попадают в один ключ
func weatherKey(p domain.Point) string {
	return fmt.Sprintf("weather:%.2f:%.2f", p.Lat, p.Lon)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("Failed to marshal value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return r.Set(ctx, key, data, ttl)
}
