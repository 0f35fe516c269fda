package agent

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"travel-assistant/models"
)

// MessageLog is the append-only ordered message sequence rendered by the
// presentation layer. It lives for exactly one conversation; nothing is
// persisted across sessions.
type MessageLog struct {
	mu       sync.Mutex
	messages []models.Message
}

func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

func (l *MessageLog) append(msg models.Message) models.Message {
	msg.ID = uuid.NewString()
	msg.Timestamp = time.Now()
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
	return msg
}

// AppendUser records a user turn.
func (l *MessageLog) AppendUser(text string) models.Message {
	return l.append(models.Message{Role: models.RoleUser, Text: text})
}

// AppendAssistant records a model reply. isError marks replies that stand
// in for a failed model exchange.
func (l *MessageLog) AppendAssistant(text string, isError bool) models.Message {
	return l.append(models.Message{Role: models.RoleAssistant, Text: text, IsError: isError})
}

// AppendSystem records an out-of-band notification such as a booking
// confirmation or failure.
func (l *MessageLog) AppendSystem(text string, isError bool) models.Message {
	return l.append(models.Message{Role: models.RoleSystem, Text: text, IsError: isError})
}

// AppendForm records a form prompt with optional prefill data.
func (l *MessageLog) AppendForm(text, prefillDestination string) models.Message {
	return l.append(models.Message{
		Role:     models.RoleForm,
		Text:     text,
		FormData: &models.FormPrefill{Destination: prefillDestination},
	})
}

// SubmitOpenForm flips the oldest unsubmitted form message to submitted.
// The flag moves false to true at most once per form and never reverts.
// It reports whether an open form was found.
func (l *MessageLog) SubmitOpenForm() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.messages {
		if l.messages[i].Role == models.RoleForm && !l.messages[i].FormSubmitted {
			l.messages[i].FormSubmitted = true
			return true
		}
	}
	return false
}

// Len returns the current number of messages.
func (l *MessageLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// Snapshot copies the full ordered sequence.
func (l *MessageLog) Snapshot() []models.Message {
	return l.Since(0)
}

// Since copies the messages appended at or after index n.
func (l *MessageLog) Since(n int) []models.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 || n > len(l.messages) {
		n = len(l.messages)
	}
	out := make([]models.Message, len(l.messages)-n)
	copy(out, l.messages[n:])
	return out
}
