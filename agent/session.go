package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tmc/langchaingo/llms"

	"travel-assistant/tools"
)

// ErrTurnInProgress is returned when a turn is started while the previous
// one has not resolved. The session protocol is strictly serial; a second
// in-flight turn would corrupt history ordering.
var ErrTurnInProgress = errors.New("a model turn is already in progress")

// ToolCall is a structured action request emitted by the model mid-turn.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResponse answers one ToolCall. ID must echo the originating call's
// ID so the model can correlate them.
type ToolResponse struct {
	ID      string
	Name    string
	Content string
}

// ModelTurn is the outcome of one exchange with the model: final text,
// zero or more tool calls, or both.
type ModelTurn struct {
	Text  string
	Calls []ToolCall
}

// Session owns the model-facing chat state: system instruction, tool
// declarations and the running history. It hides the vendor SDK behind
// llms.Model so tests can script turns with a fake.
type Session struct {
	mu      sync.Mutex
	busy    bool
	llm     llms.Model
	tools   []llms.Tool
	history []llms.MessageContent
}

// NewSession creates a session seeded with the system instruction and the
// tool registry contract.
func NewSession(llm llms.Model) *Session {
	return &Session{
		llm:   llm,
		tools: tools.Declarations(),
		history: []llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, SystemInstruction),
		},
	}
}

func (s *Session) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrTurnInProgress
	}
	s.busy = true
	return nil
}

func (s *Session) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// appendHistory and snapshotHistory keep history access consistent for
// readers like HistoryLen that may run while a turn is in flight.
func (s *Session) appendHistory(msg llms.MessageContent) {
	s.mu.Lock()
	s.history = append(s.history, msg)
	s.mu.Unlock()
}

func (s *Session) snapshotHistory() []llms.MessageContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llms.MessageContent, len(s.history))
	copy(out, s.history)
	return out
}

// Send submits a user message and returns the model's turn. Callers must
// not overlap Send/SendToolResponses calls.
func (s *Session) Send(ctx context.Context, text string) (*ModelTurn, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	s.appendHistory(llms.TextParts(llms.ChatMessageTypeHuman, text))
	return s.generate(ctx)
}

// SendToolResponses submits a full round of tool responses and returns the
// model's next turn.
func (s *Session) SendToolResponses(ctx context.Context, responses []ToolResponse) (*ModelTurn, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	msg := llms.MessageContent{Role: llms.ChatMessageTypeTool}
	for _, r := range responses {
		msg.Parts = append(msg.Parts, llms.ToolCallResponse{
			ToolCallID: r.ID,
			Name:       r.Name,
			Content:    r.Content,
		})
	}
	s.appendHistory(msg)
	return s.generate(ctx)
}

// AbandonToolCalls records a terminal response for each outstanding tool
// call without another model exchange. An abandoned turn must not leave
// dangling tool-call parts in history; the backend rejects a follow-up
// user message that arrives while calls are unanswered.
func (s *Session) AbandonToolCalls(calls []ToolCall, reason string) {
	if len(calls) == 0 {
		return
	}
	msg := llms.MessageContent{Role: llms.ChatMessageTypeTool}
	for _, c := range calls {
		msg.Parts = append(msg.Parts, llms.ToolCallResponse{
			ToolCallID: c.ID,
			Name:       c.Name,
			Content:    reason,
		})
	}
	s.appendHistory(msg)
}

// HistoryLen reports the number of history entries, system instruction
// included.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

func (s *Session) generate(ctx context.Context) (*ModelTurn, error) {
	resp, err := s.llm.GenerateContent(ctx, s.snapshotHistory(), llms.WithTools(s.tools))
	if err != nil {
		return nil, fmt.Errorf("model exchange failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("model returned no choices")
	}
	choice := resp.Choices[0]

	// Record the assistant turn, tool-call parts included, so follow-up
	// tool responses land against the right context.
	assistant := llms.MessageContent{Role: llms.ChatMessageTypeAI}
	if choice.Content != "" {
		assistant.Parts = append(assistant.Parts, llms.TextContent{Text: choice.Content})
	}
	for _, tc := range choice.ToolCalls {
		assistant.Parts = append(assistant.Parts, tc)
	}
	s.appendHistory(assistant)

	turn := &ModelTurn{Text: choice.Content}
	for _, tc := range choice.ToolCalls {
		call := ToolCall{ID: tc.ID}
		if tc.FunctionCall != nil {
			call.Name = tc.FunctionCall.Name
			if tc.FunctionCall.Arguments != "" {
				if err := json.Unmarshal([]byte(tc.FunctionCall.Arguments), &call.Args); err != nil {
					return nil, fmt.Errorf("malformed arguments for tool %s: %w", call.Name, err)
				}
			}
		}
		turn.Calls = append(turn.Calls, call)
	}
	return turn, nil
}
