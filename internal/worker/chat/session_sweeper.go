package chat

import (
	"context"
	"time"

	"github.com/smart-jordan/internal/worker"
	"go.uber.org/zap"
)

// Expirer - удаление брошенных сессий
type Expirer interface {
	ExpireIdle(ctx context.Context, ttl time.Duration) int
}

// SessionSweeper периодически удаляет сессии чата без активности дольше ttl
type SessionSweeper struct {
	*worker.BaseWorker
	expirer  Expirer
	ttl      time.Duration
	interval time.Duration
}

// NewSessionSweeper создает новый SessionSweeper
func NewSessionSweeper(expirer Expirer, ttl, interval time.Duration, logger *zap.Logger) *SessionSweeper {
	return &SessionSweeper{
		BaseWorker: worker.NewBaseWorker("chat-session-sweeper", logger),
		expirer:    expirer,
		ttl:        ttl,
		interval:   interval,
	}
}

// Start запускает цикл очистки до Stop или отмены контекста
func (w *SessionSweeper) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SessionSweeper",
		zap.Duration("ttl", w.ttl),
		zap.Duration("interval", w.interval))

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
			w.expirer.ExpireIdle(ctx, w.ttl)
		}
	}
}
