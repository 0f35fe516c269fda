package agent

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/tmc/langchaingo/llms"

	"travel-assistant/models"
)

// fakeModel returns scripted responses in order and records every history
// it was asked to complete.
type fakeModel struct {
	mu        sync.Mutex
	responses []*llms.ContentResponse
	err       error
	histories [][]llms.MessageContent
	entered   chan struct{}
	proceed   chan struct{}
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.proceed != nil {
		<-f.proceed
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := make([]llms.MessageContent, len(messages))
	copy(snapshot, messages)
	f.histories = append(f.histories, snapshot)

	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "ok"}}}, nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := f.GenerateContent(ctx, []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func (f *fakeModel) generateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.histories)
}

func textTurn(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

func toolTurn(calls ...llms.ToolCall) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{ToolCalls: calls}}}
}

func call(id, name, args string) llms.ToolCall {
	return llms.ToolCall{
		ID:   id,
		Type: "function",
		FunctionCall: &llms.FunctionCall{
			Name:      name,
			Arguments: args,
		},
	}
}

// fakeGateway records submitted bookings and returns a fixed result.
type fakeGateway struct {
	mu       sync.Mutex
	result   models.BookingResult
	err      error
	requests []models.BookingRequest
}

func (g *fakeGateway) CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.err != nil {
		return models.BookingResult{}, g.err
	}
	return g.result, nil
}

func jsonUnmarshal(s string, v any) error {
	return json.Unmarshal([]byte(s), v)
}

const bookingArgs = `{
	"destination": "Goa",
	"duration": "5 days",
	"package_type": "Premium",
	"travel_date": "2026-09-15",
	"customer_name": "Asha Rao",
	"customer_mobile": "+91 9876543210",
	"customer_email": "asha@example.com"
}`
