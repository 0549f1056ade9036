package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/pkg/errors"
)

// chatSessionStore держит сессии в памяти процесса, после рестарта они теряются
type chatSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.ChatSession
	now      func() time.Time
}

// NewChatSessionStore создает хранилище сессий чата
func NewChatSessionStore() repository.ChatSessionRepository {
	return &chatSessionStore{
		sessions: make(map[uuid.UUID]*domain.ChatSession),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *chatSessionStore) Create(_ context.Context) (*domain.ChatSession, error) {
	now := s.now()
	session := &domain.ChatSession{
		ID: uuid.New(),
		Messages: []domain.ChatMessage{
			{Sender: domain.SenderBot, Text: domain.ChatGreeting, CreatedAt: now},
		},
		CreatedAt:      now,
		LastActivityAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.Clone(), nil
}

func (s *chatSessionStore) Get(_ context.Context, id uuid.UUID) (*domain.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, errors.ErrChatSessionNotFound
	}
	session.LastActivityAt = s.now()
	return session.Clone(), nil
}

func (s *chatSessionStore) BeginTurn(_ context.Context, id uuid.UUID, msg domain.ChatMessage) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, errors.ErrChatSessionNotFound
	}
	if session.Composing {
		return nil, errors.ErrChatBusy
	}

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}
	session.Messages = append(session.Messages, msg)
	session.Composing = true
	session.LastActivityAt = msg.CreatedAt

	history := make([]domain.ChatMessage, len(session.Messages))
	copy(history, session.Messages)
	return history, nil
}

func (s *chatSessionStore) EndTurn(_ context.Context, id uuid.UUID, msg domain.ChatMessage) (*domain.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, errors.ErrChatSessionNotFound
	}

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}
	session.Messages = append(session.Messages, msg)
	session.Composing = false
	session.LastActivityAt = msg.CreatedAt

	return session.Clone(), nil
}

func (s *chatSessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return errors.ErrChatSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *chatSessionStore) ExpireIdle(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, session := range s.sessions {
		if session.Composing || !session.LastActivityAt.Before(cutoff) {
			continue
		}
		delete(s.sessions, id)
		expired++
	}
	return expired, nil
}
