// Package agent implements the conversational core: the model session,
// the tool-call mediation loop, and the per-conversation message log.
package agent

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/tmc/langchaingo/llms"

	"travel-assistant/models"
)

// Conversation binds a message log, a model session and a mediator into
// the surface the presentation layer talks to. One Conversation lives for
// one UI session and is discarded on teardown.
type Conversation struct {
	mu       sync.Mutex
	session  *Session
	mediator *Mediator
	messages *MessageLog
}

// Option tweaks conversation construction.
type Option func(*options)

type options struct {
	maxRounds int
	greeting  string
}

// WithMaxToolRounds overrides the tool-call loop cap.
func WithMaxToolRounds(n int) Option {
	return func(o *options) { o.maxRounds = n }
}

// WithGreeting overrides the initial assistant message.
func WithGreeting(text string) Option {
	return func(o *options) { o.greeting = text }
}

// NewConversation creates a conversation backed by the given model and
// booking gateway, seeded with the greeting message.
func NewConversation(llm llms.Model, gateway Gateway, opts ...Option) *Conversation {
	o := options{greeting: Greeting}
	for _, opt := range opts {
		opt(&o)
	}

	messages := NewMessageLog()
	session := NewSession(llm)
	c := &Conversation{
		session:  session,
		mediator: NewMediator(session, gateway, messages, o.maxRounds),
		messages: messages,
	}
	if o.greeting != "" {
		messages.AppendAssistant(o.greeting, false)
	}
	return c
}

// Messages returns the full ordered message sequence.
func (c *Conversation) Messages() []models.Message {
	return c.messages.Snapshot()
}

// SendUserMessage runs one full user turn: appends the user message,
// exchanges with the model, mediates any tool calls, and appends the
// final assistant text. It returns the messages appended during the turn.
// Model failures become an error-flagged assistant message; there is no
// automatic retry.
func (c *Conversation) SendUserMessage(ctx context.Context, text string) ([]models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mark := c.messages.Len()
	c.messages.AppendUser(text)
	c.runTurn(ctx, text)
	return c.messages.Since(mark), nil
}

// SubmitForm completes the open booking form: it marks the form message
// submitted, replays the collected fields as a user turn, and lets the
// model decide whether to call submit_booking_request.
func (c *Conversation) SubmitForm(ctx context.Context, req models.BookingRequest) ([]models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mark := c.messages.Len()
	if !c.messages.SubmitOpenForm() {
		log.Printf("Form submitted with no open form message")
	}

	text := fmt.Sprintf(
		"Booking Form Submitted:\nDestination: %s\nDuration: %s\nPackage: %s\nDate: %s\nName: %s\nMobile: %s\nEmail: %s\n\nPlease confirm these details to proceed with the booking.",
		req.Destination, req.Duration, req.PackageType, req.TravelDate,
		req.CustomerName, req.CustomerMobile, req.CustomerEmail)

	c.messages.AppendUser(text)
	c.runTurn(ctx, text)
	return c.messages.Since(mark), nil
}

// DispatchTool executes one tool call outside the text loop, used by the
// voice channel which delivers responses over its own session instead of
// a sendMessage round-trip. The dispatch contract is identical.
func (c *Conversation) DispatchTool(ctx context.Context, call ToolCall) ToolResponse {
	return c.mediator.Dispatch(ctx, call)
}

func (c *Conversation) runTurn(ctx context.Context, text string) {
	turn, err := c.session.Send(ctx, text)
	if err != nil {
		log.Printf("Chat error: %v", err)
		c.messages.AppendAssistant(fmt.Sprintf(
			"I'm having trouble connecting to the network. Error: %v. Please check your internet connection.", err), true)
		return
	}

	final, err := c.mediator.Resolve(ctx, turn)
	if err != nil {
		log.Printf("Tool-call loop error: %v", err)
		c.messages.AppendAssistant(fmt.Sprintf(
			"I ran into a problem completing that request: %v.", err), true)
		return
	}
	if final != "" {
		c.messages.AppendAssistant(final, false)
	}
}
