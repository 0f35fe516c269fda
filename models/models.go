package models

import (
	"time"
)

// Message role values. A message's role decides how it renders and whether
// it is part of the model-facing history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleForm      = "form"
)

// FormPrefill carries values used to pre-populate the booking form.
type FormPrefill struct {
	Destination string `json:"destination"`
}

// Message is one entry in a conversation's ordered message log.
type Message struct {
	ID            string       `json:"id"`
	Role          string       `json:"role"`
	Text          string       `json:"text"`
	Timestamp     time.Time    `json:"timestamp"`
	IsError       bool         `json:"is_error,omitempty"`
	FormData      *FormPrefill `json:"form_data,omitempty"`
	FormSubmitted bool         `json:"form_submitted,omitempty"`
}

// Package types accepted by the booking gateway.
const (
	PackageBudget   = "Budget"
	PackageStandard = "Standard"
	PackagePremium  = "Premium"
)

// BookingRequest is the payload of the submit_booking_request tool and the
// body of POST /api/create-booking. All fields are required; validation
// beyond presence is the gateway's job.
type BookingRequest struct {
	Destination    string `json:"destination"`
	Duration       string `json:"duration"`
	PackageType    string `json:"package_type"`
	TravelDate     string `json:"travel_date"`
	CustomerName   string `json:"customer_name"`
	CustomerMobile string `json:"customer_mobile"`
	CustomerEmail  string `json:"customer_email"`
}

// BookingResult is the gateway's response to a booking submission.
type BookingResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	DBStatus string `json:"dbStatus,omitempty"`
}

// Booking is a persisted booking row.
type Booking struct {
	ID             string    `json:"id"`
	Destination    string    `json:"destination"`
	Duration       string    `json:"duration"`
	PackageType    string    `json:"package_type"`
	TravelDate     string    `json:"travel_date"`
	CustomerName   string    `json:"customer_name"`
	CustomerMobile string    `json:"customer_mobile"`
	CustomerEmail  string    `json:"customer_email"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Destination is one entry in the destination catalog.
type Destination struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	StartingPrice string   `json:"starting_price"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category"`
}

// SendMessageRequest is the request body for sending a chat message.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// StartChatResponse is returned when a new conversation is created.
type StartChatResponse struct {
	ConversationID string    `json:"conversation_id"`
	Messages       []Message `json:"messages"`
}

// ChatResponse carries the messages appended during one user turn.
type ChatResponse struct {
	Messages []Message `json:"messages"`
}
