package sensor

import (
	"context"
	"time"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/worker"
	"go.uber.org/zap"
)

// Ticker - источник новых показаний
type Ticker interface {
	Tick(ctx context.Context) *domain.SensorSnapshot
}

// SimulationWorker обновляет симулированные показания с фиксированным интервалом
type SimulationWorker struct {
	*worker.BaseWorker
	ticker   Ticker
	interval time.Duration
}

// NewSimulationWorker создает новый SimulationWorker
func NewSimulationWorker(ticker Ticker, interval time.Duration, logger *zap.Logger) *SimulationWorker {
	return &SimulationWorker{
		BaseWorker: worker.NewBaseWorker("sensor-simulation", logger),
		ticker:     ticker,
		interval:   interval,
	}
}

// Start запускает цикл тиков до Stop или отмены контекста
func (w *SimulationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SensorSimulationWorker", zap.Duration("interval", w.interval))

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-t.C:
			w.ticker.Tick(ctx)
		}
	}
}
