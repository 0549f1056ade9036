package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/repository/cache"
)

func getTestRedis(t *testing.T) *cache.Redis {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	return cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_SensorSnapshot(t *testing.T) {
	r := getTestRedis(t)
	defer r.Close()

	repo := cache.NewCacheRepository(r)
	ctx := context.Background()
	require.NoError(t, repo.Delete(ctx, "sensor:current"))

	got, err := repo.GetSensorSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	snapshot := &domain.SensorSnapshot{
		Current: domain.SensorReading{Temperature: 30, Humidity: 50, CrowdLevel: domain.CrowdHigh, AirQuality: domain.AirModerate},
		Changed: []domain.SensorField{domain.FieldTemperature},
	}
	require.NoError(t, repo.SetSensorSnapshot(ctx, snapshot, time.Minute))

	got, err = repo.GetSensorSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 30, got.Current.Temperature)
	assert.Equal(t, []domain.SensorField{domain.FieldTemperature}, got.Changed)
}

func TestCacheRepository_WeatherKeyRounding(t *testing.T) {
	r := getTestRedis(t)
	defer r.Close()

	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	w := &domain.Weather{Temperature: 21.5, Humidity: 33, Lat: 31.9539, Lon: 35.9106, Source: domain.WeatherSourceLive}
	require.NoError(t, repo.SetWeather(ctx, domain.Point{Lat: 31.9539, Lon: 35.9106}, w, time.Minute))

	got, err := repo.GetWeather(ctx, domain.Point{Lat: 31.9512, Lon: 35.9149})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 21.5, got.Temperature)
}
