package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-jordan/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Sensor.Interval)
	assert.Equal(t, 600*time.Second, cfg.Cache.WeatherCacheTTL)
	assert.Equal(t, "https://api.openweathermap.org", cfg.Weather.BaseURL)
	assert.True(t, cfg.Sensor.StreamEnabled)
	assert.Equal(t, 30*time.Second, cfg.Worker.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Chat.SessionTTL)
	assert.Equal(t, time.Minute, cfg.Chat.SweepInterval)
	assert.True(t, cfg.Worker.Enabled)
	assert.True(t, cfg.Worker.InProcessSensor)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("SENSOR_INTERVAL", "10000")
	t.Setenv("CHAT_ENDPOINT", "https://guide.example.com/api/chat")
	t.Setenv("WEATHER_BASE_URL", "https://weather.example.com/")
	t.Setenv("REDIS_HOST", "cache")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Sensor.Interval)
	assert.Equal(t, "https://guide.example.com/api/chat", cfg.Chat.Endpoint)
	assert.Equal(t, "https://weather.example.com", cfg.Weather.BaseURL)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
}

func TestLoad_RejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("SENSOR_INTERVAL", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "jordan",
		Password: "secret",
		DBName:   "smart_jordan",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=jordan password=secret dbname=smart_jordan sslmode=disable", cfg.DSN())
}

func TestLoad_SplitSensorMode(t *testing.T) {
	t.Setenv("API_SENSOR_WORKER_ENABLED", "false")
	t.Setenv("WORKER_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.Worker.InProcessSensor)
	assert.True(t, cfg.Worker.Enabled)
}

func TestLoad_RejectsNonPositiveSessionTTL(t *testing.T) {
	t.Setenv("CHAT_SESSION_TTL", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
