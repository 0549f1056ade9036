package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout - ожидание завершения воркеров, если таймаут не задан
const DefaultShutdownTimeout = 30 * time.Second

// ErrAlreadyStarted - повторный вызов Start
var ErrAlreadyStarted = errors.New("workers already started")

// WorkerManager запускает зарегистрированные воркеры и останавливает их при завершении процесса
type WorkerManager struct {
	workers         []Worker
	shutdownTimeout time.Duration
	started         bool
	logger          *zap.Logger
	wg              sync.WaitGroup
	mu              sync.Mutex
}

// NewWorkerManager создает менеджер. shutdownTimeout <= 0 заменяется на DefaultShutdownTimeout.
func NewWorkerManager(shutdownTimeout time.Duration, logger *zap.Logger) *WorkerManager {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &WorkerManager{
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// Register добавляет воркер. После Start новые воркеры не принимаются.
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		m.logger.Warn("Worker registered after start, ignoring", zap.String("name", w.Name()))
		return
	}
	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Names - имена зарегистрированных воркеров в порядке регистрации
func (m *WorkerManager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.workers))
	for _, w := range m.workers {
		names = append(names, w.Name())
	}
	return names
}

// Start запускает каждый воркер в своей горутине
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	if len(m.workers) == 0 {
		m.mu.Unlock()
		return fmt.Errorf("no workers registered")
	}
	m.started = true
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				m.logger.Error("Worker exited with error",
					zap.String("name", w.Name()),
					zap.Error(err))
			}
		}(w)
	}

	return nil
}

// Stop сигнализирует всем воркерам и ждет их завершения не дольше shutdownTimeout
func (m *WorkerManager) Stop() error {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	var errs []error
	for _, w := range workers {
		if err := w.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", w.Name(), err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(m.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
		m.logger.Info("All workers stopped")
	case <-timer.C:
		m.logger.Warn("Workers shutdown timed out", zap.Duration("timeout", m.shutdownTimeout))
		errs = append(errs, fmt.Errorf("workers shutdown timed out after %v", m.shutdownTimeout))
	}

	return errors.Join(errs...)
}
