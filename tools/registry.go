// Package tools defines the closed set of tools exposed to the model and
// the schemas the model uses to call them.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"travel-assistant/models"
)

// Tool names as they appear in model tool-call requests.
const (
	DisplayBookingForm   = "display_booking_form"
	SubmitBookingRequest = "submit_booking_request"
)

// Kind identifies one of the registered tools.
type Kind int

const (
	KindUnknown Kind = iota
	KindDisplayBookingForm
	KindSubmitBookingRequest
)

// KindOf maps a tool name from the wire to its Kind. Names outside the
// registry map to KindUnknown; callers answer those with a generic
// response instead of failing the turn.
func KindOf(name string) Kind {
	switch name {
	case DisplayBookingForm:
		return KindDisplayBookingForm
	case SubmitBookingRequest:
		return KindSubmitBookingRequest
	default:
		return KindUnknown
	}
}

var bookingRequestFields = []string{
	"destination", "duration", "package_type", "travel_date",
	"customer_name", "customer_mobile", "customer_email",
}

// Declarations returns the tool descriptors handed to the model at
// session creation. This list is the full contract: the model may only
// request these two tools.
func Declarations() []llms.Tool {
	bookingProps := map[string]any{}
	for _, f := range bookingRequestFields {
		bookingProps[f] = map[string]any{"type": "string"}
	}

	return []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        DisplayBookingForm,
				Description: "Displays a visual form to the user to collect trip details faster. Use this if the user asks for it, or if data collection gets tedious.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prefill_destination": map[string]any{"type": "string"},
					},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        SubmitBookingRequest,
				Description: "Finalizes the booking. Saves data to the database and sends the confirmation email to the customer. Call this ONLY when all details are collected and verified.",
				Parameters: map[string]any{
					"type":       "object",
					"properties": bookingProps,
					"required":   bookingRequestFields,
				},
			},
		},
	}
}

// PrefillDestination extracts the optional prefill_destination argument of
// display_booking_form.
func PrefillDestination(args map[string]any) string {
	v, _ := args["prefill_destination"].(string)
	return v
}

// DecodeBookingRequest converts raw submit_booking_request arguments into
// a BookingRequest, checking that every required field is present and
// non-empty. Anything past presence is validated by the gateway.
func DecodeBookingRequest(args map[string]any) (models.BookingRequest, error) {
	var req models.BookingRequest

	raw, err := json.Marshal(args)
	if err != nil {
		return req, fmt.Errorf("invalid tool arguments: %w", err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("invalid tool arguments: %w", err)
	}

	missing := make([]string, 0, len(bookingRequestFields))
	for _, f := range bookingRequestFields {
		if s, _ := args[f].(string); s == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return req, fmt.Errorf("missing required fields: %v", missing)
	}

	return req, nil
}
