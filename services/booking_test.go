package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/models"
)

var testBooking = models.BookingRequest{
	Destination:    "Goa",
	Duration:       "5 days",
	PackageType:    "Premium",
	TravelDate:     "2026-09-15",
	CustomerName:   "Asha Rao",
	CustomerMobile: "+91 9876543210",
	CustomerEmail:  "asha@example.com",
}

func TestCreateBookingSuccess(t *testing.T) {
	var received models.BookingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/create-booking", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(models.BookingResult{Success: true, Message: "Booking processed successfully", DBStatus: "saved"})
	}))
	defer srv.Close()

	client := NewBookingClient(srv.URL)
	result, err := client.CreateBooking(context.Background(), testBooking)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "saved", result.DBStatus)

	// snake_case wire contract
	assert.Equal(t, testBooking, received)
}

func TestCreateBookingApplicationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.BookingResult{Success: false, Message: "Failed to process booking", DBStatus: "failed"})
	}))
	defer srv.Close()

	client := NewBookingClient(srv.URL)
	result, err := client.CreateBooking(context.Background(), testBooking)
	require.NoError(t, err) // the gateway answered; this is not a transport error
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to process booking", result.Message)
}

func TestCreateBookingNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewBookingClient(srv.URL)
	_, err := client.CreateBooking(context.Background(), testBooking)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach booking gateway")
}

func TestCreateBookingMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	}))
	defer srv.Close()

	client := NewBookingClient(srv.URL)
	_, err := client.CreateBooking(context.Background(), testBooking)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected gateway response")
}
