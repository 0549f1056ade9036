package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Sensor   SensorConfig
	Chat     ChatConfig
	Weather  WeatherConfig
	Map      MapConfig
	CORS     CORSConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type CacheConfig struct {
	SensorCacheTTL  time.Duration
	WeatherCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type SensorConfig struct {
	Interval      time.Duration
	StreamEnabled bool
	StreamMaxLen  int64
}

type ChatConfig struct {
	Endpoint      string
	Timeout       time.Duration
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

type WeatherConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type MapConfig struct {
	TileURL     string
	Attribution string
}

type CORSConfig struct {
	AllowOrigins string
}

// WorkerConfig - Enabled управляет процессом cmd/worker, InProcessSensor - симулятором внутри API
type WorkerConfig struct {
	Enabled         bool
	InProcessSensor bool
	ShutdownTimeout time.Duration
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			ReadTimeout:  time.Duration(v.GetInt("API_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("API_WRITE_TIMEOUT")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		Cache: CacheConfig{
			SensorCacheTTL:  time.Duration(v.GetInt("SENSOR_CACHE_TTL")) * time.Second,
			WeatherCacheTTL: time.Duration(v.GetInt("WEATHER_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Sensor: SensorConfig{
			Interval:      time.Duration(v.GetInt("SENSOR_INTERVAL")) * time.Millisecond,
			StreamEnabled: v.GetBool("SENSOR_STREAM_ENABLED"),
			StreamMaxLen:  v.GetInt64("SENSOR_STREAM_MAX_LEN"),
		},
		Chat: ChatConfig{
			Endpoint: v.GetString("CHAT_ENDPOINT"),
			Timeout:       time.Duration(v.GetInt("CHAT_TIMEOUT")) * time.Second,
			SessionTTL:    time.Duration(v.GetInt("CHAT_SESSION_TTL")) * time.Second,
			SweepInterval: time.Duration(v.GetInt("CHAT_SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Weather: WeatherConfig{
			BaseURL: strings.TrimRight(v.GetString("WEATHER_BASE_URL"), "/"),
			APIKey:  v.GetString("WEATHER_API_KEY"),
			Timeout: time.Duration(v.GetInt("WEATHER_TIMEOUT")) * time.Second,
		},
		Map: MapConfig{
			TileURL:     v.GetString("MAP_TILE_URL"),
			Attribution: v.GetString("MAP_ATTRIBUTION"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Worker: WorkerConfig{
			Enabled:         v.GetBool("WORKER_ENABLED"),
			InProcessSensor: v.GetBool("API_SENSOR_WORKER_ENABLED"),
			ShutdownTimeout: time.Duration(v.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
		},
	}

	if cfg.Sensor.Interval <= 0 {
		return nil, fmt.Errorf("SENSOR_INTERVAL must be positive")
	}
	if cfg.Chat.SessionTTL <= 0 || cfg.Chat.SweepInterval <= 0 {
		return nil, fmt.Errorf("CHAT_SESSION_TTL and CHAT_SESSION_SWEEP_INTERVAL must be positive")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_READ_TIMEOUT", 10)
	v.SetDefault("API_WRITE_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "smart_jordan")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("SENSOR_CACHE_TTL", 60)
	v.SetDefault("WEATHER_CACHE_TTL", 600)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SENSOR_INTERVAL", 5000)
	v.SetDefault("SENSOR_STREAM_ENABLED", true)
	v.SetDefault("SENSOR_STREAM_MAX_LEN", 1000)

	v.SetDefault("CHAT_ENDPOINT", "http://localhost:8001/api/chat")
	v.SetDefault("CHAT_TIMEOUT", 60)
	v.SetDefault("CHAT_SESSION_TTL", 1800)
	v.SetDefault("CHAT_SESSION_SWEEP_INTERVAL", 60)

	v.SetDefault("WEATHER_BASE_URL", "https://api.openweathermap.org")
	v.SetDefault("WEATHER_TIMEOUT", 10)

	v.SetDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("MAP_ATTRIBUTION", "&copy; OpenStreetMap contributors")

	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("API_SENSOR_WORKER_ENABLED", true)
	v.SetDefault("WORKER_SHUTDOWN_TIMEOUT", 30)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения в формате key=value для драйвера pgx
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}
