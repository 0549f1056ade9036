package chat

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/repository/memory"
	"github.com/smart-jordan/internal/usecase"
)

type countingExpirer struct {
	calls atomic.Int32
	ttl   atomic.Int64
}

func (e *countingExpirer) ExpireIdle(_ context.Context, ttl time.Duration) int {
	e.calls.Add(1)
	e.ttl.Store(int64(ttl))
	return 0
}

func TestSessionSweeper_Name(t *testing.T) {
	w := NewSessionSweeper(&countingExpirer{}, time.Minute, time.Second, zap.NewNop())

	assert.Equal(t, "chat-session-sweeper", w.Name())
}

func TestSessionSweeper_SweepsUntilStopped(t *testing.T) {
	expirer := &countingExpirer{}
	w := NewSessionSweeper(expirer, 30*time.Minute, 10*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return expirer.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(30*time.Minute), expirer.ttl.Load())

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSessionSweeper_RemovesIdleKeepsComposing(t *testing.T) {
	store := memory.NewChatSessionStore()
	uc := usecase.NewChatUseCase(store, nil, time.Second, zap.NewNop())
	ctx := context.Background()

	idle, err := uc.Open(ctx)
	require.NoError(t, err)
	busy, err := uc.Open(ctx)
	require.NoError(t, err)
	_, err = store.BeginTurn(ctx, busy.ID, domain.ChatMessage{Sender: domain.SenderUser, Text: "waiting"})
	require.NoError(t, err)

	// Отрицательный ttl: все сессии уже брошены
	w := NewSessionSweeper(uc, -time.Second, 10*time.Millisecond, zap.NewNop())
	go func() { _ = w.Start(ctx) }()
	defer w.Stop()

	assert.Eventually(t, func() bool {
		_, err := uc.Transcript(ctx, idle.ID)
		return err != nil
	}, time.Second, 5*time.Millisecond)

	got, err := uc.Transcript(ctx, busy.ID)
	require.NoError(t, err)
	assert.True(t, got.Composing)
}
