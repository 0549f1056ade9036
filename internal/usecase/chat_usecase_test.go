package usecase_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/pkg/errors"
	"github.com/smart-jordan/internal/repository/memory"
	"github.com/smart-jordan/internal/usecase"
)

func newChatUseCase(client *MockChatCompletionClient) *usecase.ChatUseCase {
	return usecase.NewChatUseCase(memory.NewChatSessionStore(), client, time.Second, zap.NewNop())
}

func TestChatUseCase_Open(t *testing.T) {
	uc := newChatUseCase(new(MockChatCompletionClient))

	session, err := uc.Open(context.Background())

	require.NoError(t, err)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, domain.SenderBot, session.Messages[0].Sender)
	assert.Equal(t, domain.ChatGreeting, session.Messages[0].Text)
	assert.False(t, session.Composing)
}

func TestChatUseCase_Submit_Success(t *testing.T) {
	ctx := context.Background()
	client := new(MockChatCompletionClient)
	client.On("Complete", mock.Anything, []domain.ChatTurn{
		{Role: domain.RoleModel, Parts: []domain.ChatPart{{Text: domain.ChatGreeting}}},
		{Role: domain.RoleUser, Parts: []domain.ChatPart{{Text: "Best time for Petra?"}}},
	}).Return("Spring and autumn.", nil)

	uc := newChatUseCase(client)
	session, err := uc.Open(ctx)
	require.NoError(t, err)

	updated, err := uc.Submit(ctx, session.ID, "  Best time for Petra?  ")

	require.NoError(t, err)
	require.Len(t, updated.Messages, 3)
	assert.Equal(t, domain.SenderUser, updated.Messages[1].Sender)
	assert.Equal(t, "Best time for Petra?", updated.Messages[1].Text)
	assert.Equal(t, domain.SenderBot, updated.Messages[2].Sender)
	assert.Equal(t, "Spring and autumn.", updated.Messages[2].Text)
	assert.False(t, updated.Composing)
	client.AssertExpectations(t)
}

func TestChatUseCase_Submit_Failure(t *testing.T) {
	ctx := context.Background()
	client := new(MockChatCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return("", stderrors.New("chat service returned status 502"))

	uc := newChatUseCase(client)
	session, err := uc.Open(ctx)
	require.NoError(t, err)
	before := len(session.Messages)

	updated, err := uc.Submit(ctx, session.ID, "hello")

	require.NoError(t, err)
	require.Len(t, updated.Messages, before+2)
	last := updated.Messages[len(updated.Messages)-1]
	assert.Equal(t, domain.SenderBot, last.Sender)
	assert.True(t, strings.HasPrefix(last.Text, domain.ChatErrorIndicator))
	assert.Contains(t, last.Text, "502")
	assert.False(t, updated.Composing)
}

func TestChatUseCase_Submit_EmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	client := new(MockChatCompletionClient)
	uc := newChatUseCase(client)

	session, err := uc.Open(ctx)
	require.NoError(t, err)

	for _, input := range []string{"", "   ", "\n\t"} {
		updated, err := uc.Submit(ctx, session.ID, input)
		require.NoError(t, err)
		assert.Equal(t, session.Messages, updated.Messages)
	}

	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestChatUseCase_Submit_BusySession(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	client := new(MockChatCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return("ok", nil).Once()

	uc := newChatUseCase(client)
	session, err := uc.Open(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Submit(ctx, session.ID, "first")
		done <- err
	}()
	<-started

	_, err = uc.Submit(ctx, session.ID, "second")
	assert.True(t, stderrors.Is(err, errors.ErrChatBusy))

	close(release)
	require.NoError(t, <-done)

	final, err := uc.Transcript(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, final.Messages, 3)
}

func TestChatUseCase_Close_DiscardsLateReply(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	client := new(MockChatCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return("too late", nil)

	uc := newChatUseCase(client)
	session, err := uc.Open(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Submit(ctx, session.ID, "hello")
		done <- err
	}()
	<-started

	require.NoError(t, uc.Close(ctx, session.ID))
	close(release)

	assert.True(t, stderrors.Is(<-done, errors.ErrChatSessionNotFound))
	_, err = uc.Transcript(ctx, session.ID)
	assert.True(t, stderrors.Is(err, errors.ErrChatSessionNotFound))
}

func TestChatUseCase_UnknownSession(t *testing.T) {
	uc := newChatUseCase(new(MockChatCompletionClient))

	_, err := uc.Submit(context.Background(), uuid.New(), "hi")
	assert.True(t, stderrors.Is(err, errors.ErrChatSessionNotFound))

	err = uc.Close(context.Background(), uuid.New())
	assert.True(t, stderrors.Is(err, errors.ErrChatSessionNotFound))
}

func TestChatUseCase_ExpireIdle(t *testing.T) {
	uc := newChatUseCase(new(MockChatCompletionClient))
	ctx := context.Background()

	session, err := uc.Open(ctx)
	require.NoError(t, err)

	assert.Zero(t, uc.ExpireIdle(ctx, time.Hour))
	_, err = uc.Transcript(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, uc.ExpireIdle(ctx, -time.Minute))
	_, err = uc.Transcript(ctx, session.ID)
	assert.ErrorIs(t, err, errors.ErrChatSessionNotFound)
}
