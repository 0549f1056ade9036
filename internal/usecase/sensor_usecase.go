package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/usecase/dto"
	"go.uber.org/zap"
)

const defaultHistoryLimit = 20

// SensorUseCase хранит текущие симулированные показания.
// Пишет только тик воркера, читают HTTP обработчики.
type SensorUseCase struct {
	sampler       SensorSampler
	cacheRepo     repository.CacheRepository
	streamRepo    repository.StreamRepository
	cacheTTL      time.Duration
	streamEnabled bool
	logger        *zap.Logger

	mu       sync.RWMutex
	snapshot *domain.SensorSnapshot
}

// NewSensorUseCase создает новый экземпляр SensorUseCase
func NewSensorUseCase(
	sampler SensorSampler,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	cacheTTL time.Duration,
	streamEnabled bool,
	logger *zap.Logger,
) *SensorUseCase {
	return &SensorUseCase{
		sampler:       sampler,
		cacheRepo:     cacheRepo,
		streamRepo:    streamRepo,
		cacheTTL:      cacheTTL,
		streamEnabled: streamEnabled && streamRepo != nil,
		logger:        logger,
	}
}

// Tick заменяет показания новым снимком, кеширует и публикует его.
// Ошибки кеша и стрима не прерывают тик.
func (uc *SensorUseCase) Tick(ctx context.Context) *domain.SensorSnapshot {
	next := uc.sampler.Sample()

	uc.mu.Lock()
	prev := domain.DefaultSensorReading()
	if uc.snapshot != nil {
		prev = uc.snapshot.Current
	}
	snapshot := &domain.SensorSnapshot{
		Current:  next,
		Previous: &prev,
		Changed:  domain.ChangedFields(prev, next),
	}
	uc.snapshot = snapshot
	uc.mu.Unlock()

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetSensorSnapshot(ctx, snapshot, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache sensor snapshot", zap.Error(err))
		}
	}

	if uc.streamEnabled {
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamSensorReadings, next); err != nil {
			uc.logger.Warn("Failed to publish sensor reading", zap.Error(err))
		}
	}

	uc.logger.Debug("Sensor tick",
		zap.Int("temperature", next.Temperature),
		zap.Int("humidity", next.Humidity),
		zap.String("crowd_level", string(next.CrowdLevel)),
		zap.String("air_quality", string(next.AirQuality)),
		zap.Int("changed", len(snapshot.Changed)),
	)

	return snapshot
}

// Current возвращает последний снимок: локальный, затем из кеша (симулятор в другом процессе),
// затем показания по умолчанию.
func (uc *SensorUseCase) Current(ctx context.Context) *domain.SensorSnapshot {
	uc.mu.RLock()
	local := uc.snapshot
	uc.mu.RUnlock()
	if local != nil {
		return local
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetSensorSnapshot(ctx)
		if err != nil {
			uc.logger.Warn("Failed to get sensor snapshot from cache", zap.Error(err))
		}
		if cached != nil {
			return cached
		}
	}

	return &domain.SensorSnapshot{
		Current: domain.DefaultSensorReading(),
		Changed: []domain.SensorField{},
	}
}

// History возвращает последние показания из стрима, от новых к старым
func (uc *SensorUseCase) History(ctx context.Context, limit int) ([]dto.SensorHistoryItem, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if uc.streamRepo == nil {
		return []dto.SensorHistoryItem{}, nil
	}

	msgs, err := uc.streamRepo.ReadLatest(ctx, domain.StreamSensorReadings, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("read sensor history: %w", err)
	}

	items := make([]dto.SensorHistoryItem, 0, len(msgs))
	for _, msg := range msgs {
		var reading domain.SensorReading
		if err := json.Unmarshal([]byte(msg.Data), &reading); err != nil {
			uc.logger.Warn("Skipping malformed sensor message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}
		items = append(items, dto.SensorHistoryItem{ID: msg.ID, Reading: reading})
	}

	return items, nil
}
