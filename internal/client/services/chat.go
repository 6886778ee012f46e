package services

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"github.com/google/uuid"
)

var QuickPrompts = []string{
	"How do I manage my cash flow?",
	"Tips for finding customers",
	"How to price my products?",
	"What investors look for?",
}

// ChatThread is the mentor conversation as shown on screen, including a
// not yet answered message.
type ChatThread struct {
	api      MentorAPI
	now      func() time.Time
	onChange func([]models.ChatMessage)

	mu       sync.Mutex
	messages []models.ChatMessage
	err      error
}

// NewChatThread builds an empty thread. onChange, when set, is called with
// a snapshot after every change to the message list.
func NewChatThread(api MentorAPI, onChange func([]models.ChatMessage)) *ChatThread {
	return &ChatThread{api: api, now: time.Now, onChange: onChange}
}

// LoadHistory replaces the thread with the backend history.
func (t *ChatThread) LoadHistory(ctx context.Context) error {
	msgs, err := t.api.GetChatHistory(ctx)
	if err != nil {
		t.setErr(err)
		return err
	}
	t.mu.Lock()
	t.messages = msgs
	t.mu.Unlock()
	t.notify()
	return nil
}

// Send appends text as a pending message right away, then asks the mentor.
// The answer replaces the pending entry; on failure the entry is dropped
// and the error is kept in Err. Blank text does nothing.
func (t *ChatThread) Send(ctx context.Context, text string) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	placeholder := models.ChatMessage{
		Message:   text,
		CreatedAt: t.now().UTC().Format(time.RFC3339),
		LocalID:   uuid.NewString(),
		Pending:   true,
	}
	t.mu.Lock()
	t.messages = append(t.messages, placeholder)
	t.mu.Unlock()
	t.notify()

	reply, err := t.api.Chat(ctx, text, models.ChatContext{CurrentModule: nil})

	t.mu.Lock()
	i := t.indexOf(placeholder.LocalID)
	switch {
	case err != nil:
		if i >= 0 {
			t.messages = append(t.messages[:i], t.messages[i+1:]...)
		}
		t.err = err
	case i >= 0:
		t.messages[i] = *reply
	default:
		t.messages = append(t.messages, *reply)
	}
	t.mu.Unlock()
	t.notify()

	if err != nil {
		return nil, err
	}
	return reply, nil
}

// Messages returns a snapshot of the thread.
func (t *ChatThread) Messages() []models.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.messages)
}

// Err is the last failure. It is not cleared by later successes.
func (t *ChatThread) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *ChatThread) indexOf(localID string) int {
	for i := range t.messages {
		if t.messages[i].LocalID == localID {
			return i
		}
	}
	return -1
}

func (t *ChatThread) setErr(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
}

func (t *ChatThread) notify() {
	if t.onChange != nil {
		t.onChange(t.Messages())
	}
}
