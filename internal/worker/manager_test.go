package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-jordan/internal/worker"
)

type blockingWorker struct {
	*worker.BaseWorker
	started atomic.Bool
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{BaseWorker: worker.NewBaseWorker(name, zap.NewNop())}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(time.Second, zap.NewNop())
	a, b := newBlockingWorker("a"), newBlockingWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return a.started.Load() && b.started.Load()
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"a", "b"}, m.Names())
	assert.ErrorIs(t, m.Start(context.Background()), worker.ErrAlreadyStarted)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
}

type stuckWorker struct {
	*worker.BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StopTimesOut(t *testing.T) {
	m := worker.NewWorkerManager(50*time.Millisecond, zap.NewNop())
	w := &stuckWorker{BaseWorker: worker.NewBaseWorker("stuck", zap.NewNop()), release: make(chan struct{})}
	defer close(w.release)

	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestWorkerManager_RegisterAfterStartIgnored(t *testing.T) {
	m := worker.NewWorkerManager(time.Second, zap.NewNop())
	m.Register(newBlockingWorker("first"))
	require.NoError(t, m.Start(context.Background()))

	m.Register(newBlockingWorker("late"))
	assert.Equal(t, []string{"first"}, m.Names())

	require.NoError(t, m.Stop())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(time.Second, zap.NewNop())

	assert.Error(t, m.Start(context.Background()))
}

func TestBaseWorker_StopIsIdempotent(t *testing.T) {
	w := worker.NewBaseWorker("idempotent", zap.NewNop())

	assert.False(t, w.IsStopped())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())

	select {
	case <-w.StopChan():
	default:
		t.Fatal("stop channel should be closed")
	}
}
