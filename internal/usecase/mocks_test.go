package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/smart-jordan/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSensorSnapshot(ctx context.Context) (*domain.SensorSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SensorSnapshot), args.Error(1)
}

func (m *MockCacheRepository) SetSensorSnapshot(ctx context.Context, snapshot *domain.SensorSnapshot, ttl time.Duration) error {
	args := m.Called(ctx, snapshot, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetWeather(ctx context.Context, p domain.Point) (*domain.Weather, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Weather), args.Error(1)
}

func (m *MockCacheRepository) SetWeather(ctx context.Context, p domain.Point, w *domain.Weather, ttl time.Duration) error {
	args := m.Called(ctx, p, w, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) ReadLatest(ctx context.Context, stream string, count int64) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

// MockDestinationRepository is a mock of DestinationRepository
type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

// MockChatCompletionClient is a mock of ChatCompletionClient
type MockChatCompletionClient struct {
	mock.Mock
}

func (m *MockChatCompletionClient) Complete(ctx context.Context, history []domain.ChatTurn) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

// MockWeatherRepository is a mock of WeatherRepository
type MockWeatherRepository struct {
	mock.Mock
}

func (m *MockWeatherRepository) Current(ctx context.Context, p domain.Point) (*domain.Weather, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Weather), args.Error(1)
}

// MockStatusRepository is a mock of StatusRepository
type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) Create(ctx context.Context, check *domain.StatusCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockStatusRepository) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCheck), args.Error(1)
}

// fixedSampler returns readings in order, repeating the last one
type fixedSampler struct {
	readings []domain.SensorReading
	i        int
}

func (s *fixedSampler) Sample() domain.SensorReading {
	r := s.readings[s.i]
	if s.i < len(s.readings)-1 {
		s.i++
	}
	return r
}
