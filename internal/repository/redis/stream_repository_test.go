package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-jordan/internal/domain"
	redisRepo "github.com/smart-jordan/internal/repository/redis"
)

const testStream = "test:stream:sensor:readings"

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)

	return client
}

func TestStreamRepository_PublishAndReadLatest(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, 100, zap.NewNop())
	ctx := context.Background()
	defer client.Del(ctx, testStream)

	for _, temp := range []int{26, 27, 28} {
		err := repo.PublishToStream(ctx, testStream, domain.SensorReading{
			Temperature: temp,
			Humidity:    45,
			CrowdLevel:  domain.CrowdLow,
			AirQuality:  domain.AirGood,
		})
		require.NoError(t, err)
	}

	msgs, err := repo.ReadLatest(ctx, testStream, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	var newest domain.SensorReading
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Data), &newest))
	assert.Equal(t, 28, newest.Temperature)
}

func TestStreamRepository_ReadLatest_EmptyStream(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, 0, zap.NewNop())

	msgs, err := repo.ReadLatest(context.Background(), testStream, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
