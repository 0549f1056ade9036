package sensor

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-jordan/internal/domain"
)

type countingTicker struct {
	ticks atomic.Int32
}

func (c *countingTicker) Tick(_ context.Context) *domain.SensorSnapshot {
	c.ticks.Add(1)
	return &domain.SensorSnapshot{Current: domain.DefaultSensorReading()}
}

func TestSimulationWorker_Name(t *testing.T) {
	w := NewSimulationWorker(&countingTicker{}, time.Second, zap.NewNop())

	assert.Equal(t, "sensor-simulation", w.Name())
}

func TestSimulationWorker_TicksUntilStopped(t *testing.T) {
	ticker := &countingTicker{}
	w := NewSimulationWorker(ticker, 10*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return ticker.ticks.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}

	stoppedAt := ticker.ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stoppedAt, ticker.ticks.Load(), "no ticks after stop")
}

func TestSimulationWorker_ContextCancellation(t *testing.T) {
	w := NewSimulationWorker(&countingTicker{}, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}

func TestSimulationWorker_NoTickBeforeInterval(t *testing.T) {
	ticker := &countingTicker{}
	w := NewSimulationWorker(ticker, time.Hour, zap.NewNop())

	go w.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Stop())

	assert.Equal(t, int32(0), ticker.ticks.Load())
}
