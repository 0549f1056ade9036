package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sender - автор сообщения в чате
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Роли в истории, отправляемой во внешний сервис
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatErrorIndicator - префикс сообщения бота о неудачном запросе
const ChatErrorIndicator = "⚠️"

// ChatGreeting - первое сообщение каждой сессии
const ChatGreeting = "Hello! I'm your Smart Guide for Jordan. How can I help you plan your perfect journey?"

type ChatMessage struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Role - роль сообщения во внешнем протоколе
func (m ChatMessage) Role() string {
	if m.Sender == SenderBot {
		return RoleModel
	}
	return RoleUser
}

// ChatSession - стенограмма одной сессии, только дополняется
type ChatSession struct {
	ID        uuid.UUID     `json:"id"`
	Messages  []ChatMessage `json:"messages"`
	Composing bool          `json:"composing"`
	CreatedAt time.Time     `json:"created_at"`
	// LastActivityAt - последнее обращение к сессии, по нему истекают брошенные сессии
	LastActivityAt time.Time `json:"last_activity_at"`
}

// Clone - глубокая копия, чтобы вызывающий не делил срез сообщений с хранилищем
func (s *ChatSession) Clone() *ChatSession {
	cp := *s
	cp.Messages = make([]ChatMessage, len(s.Messages))
	copy(cp.Messages, s.Messages)
	return &cp
}

type ChatPart struct {
	Text string `json:"text"`
}

type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// ChatCompletionRequest - тело запроса к сервису ответов
type ChatCompletionRequest struct {
	History []ChatTurn `json:"history"`
}

// ChatCompletionResponse - тело успешного ответа
type ChatCompletionResponse struct {
	Response string `json:"response"`
}

// HistoryFromTranscript - стенограмма в формате внешнего протокола, порядок сохраняется
func HistoryFromTranscript(messages []ChatMessage) []ChatTurn {
	history := make([]ChatTurn, 0, len(messages))
	for _, m := range messages {
		history = append(history, ChatTurn{
			Role:  m.Role(),
			Parts: []ChatPart{{Text: m.Text}},
		})
	}
	return history
}
