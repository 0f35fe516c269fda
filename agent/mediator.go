package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"travel-assistant/models"
	"travel-assistant/tools"
)

// DefaultMaxRounds bounds the tool-call loop so a pathological model
// response cannot amplify requests against the gateway forever.
const DefaultMaxRounds = 10

// ErrTooManyRounds is returned when the loop hits its round cap before
// the model stops requesting tools.
var ErrTooManyRounds = errors.New("tool-call loop exceeded maximum rounds")

// Gateway submits finalized bookings for persistence and confirmation
// email delivery.
type Gateway interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingResult, error)
}

// Mediator drives the tool-call loop for a single user turn: it executes
// every tool the model requests, feeds the responses back, and repeats
// until the model answers with plain text.
type Mediator struct {
	session   *Session
	gateway   Gateway
	messages  *MessageLog
	maxRounds int
}

// NewMediator wires a mediator to its session, gateway and message log.
// maxRounds <= 0 selects DefaultMaxRounds.
func NewMediator(session *Session, gateway Gateway, messages *MessageLog, maxRounds int) *Mediator {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Mediator{
		session:   session,
		gateway:   gateway,
		messages:  messages,
		maxRounds: maxRounds,
	}
}

// Resolve runs the loop to completion starting from an initial model turn
// and returns the model's final text. Tool calls within one round run
// concurrently; the round only advances once all of them complete.
func (m *Mediator) Resolve(ctx context.Context, turn *ModelTurn) (string, error) {
	for round := 0; len(turn.Calls) > 0; round++ {
		if round >= m.maxRounds {
			m.session.AbandonToolCalls(turn.Calls,
				"Cancelled: the tool-call limit for this turn was reached.")
			return "", ErrTooManyRounds
		}

		responses := make([]ToolResponse, len(turn.Calls))
		var wg sync.WaitGroup
		for i, call := range turn.Calls {
			wg.Add(1)
			go func(i int, call ToolCall) {
				defer wg.Done()
				responses[i] = m.Dispatch(ctx, call)
			}(i, call)
		}
		wg.Wait()

		next, err := m.session.SendToolResponses(ctx, responses)
		if err != nil {
			return "", err
		}
		turn = next
	}
	return turn.Text, nil
}

// Dispatch executes a single tool call and builds its response, echoing
// the request's correlation ID. It never fails the turn: failures become
// response text the model can react to.
func (m *Mediator) Dispatch(ctx context.Context, call ToolCall) ToolResponse {
	resp := ToolResponse{ID: call.ID, Name: call.Name}

	switch tools.KindOf(call.Name) {
	case tools.KindDisplayBookingForm:
		m.messages.AppendForm("Please fill out the booking details below:", tools.PrefillDestination(call.Args))
		resp.Content = "Booking form displayed to user. Waiting for submission."

	case tools.KindSubmitBookingRequest:
		resp.Content = m.submitBooking(ctx, call.Args)

	default:
		log.Printf("Unknown tool requested by model: %q", call.Name)
		resp.Content = fmt.Sprintf("Unknown tool %q. No action was taken.", call.Name)
	}
	return resp
}

func (m *Mediator) submitBooking(ctx context.Context, args map[string]any) string {
	req, err := tools.DecodeBookingRequest(args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	result, err := m.gateway.CreateBooking(ctx, req)
	if err != nil {
		log.Printf("Booking gateway unreachable: %v", err)
		m.messages.AppendSystem("Network Error: Could not connect to booking server.", true)
		return "Failed to connect to booking server."
	}
	if !result.Success {
		m.messages.AppendSystem(fmt.Sprintf("Error: %s", result.Message), true)
		return fmt.Sprintf("Error: %s", result.Message)
	}

	status := "Processed"
	if result.DBStatus == "saved" {
		status = "Saved to DB"
	}
	m.messages.AppendSystem(fmt.Sprintf(
		"Booking Confirmed & Email Sent!\n\nDestination: %s\nName: %s\nStatus: %s",
		req.Destination, req.CustomerName, status), false)
	return "Booking processed successfully. Email sent to customer."
}
