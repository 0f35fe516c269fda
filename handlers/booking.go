package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/dbos-inc/dbos-transact-golang/dbos"
	"github.com/gin-gonic/gin"

	"travel-assistant/models"
	"travel-assistant/workflows"
)

// BookingHandler implements the booking submission gateway endpoint.
type BookingHandler struct {
	db        *sql.DB
	dbosCtx   dbos.DBOSContext
	workflows *workflows.BookingWorkflows
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(db *sql.DB, dbosCtx dbos.DBOSContext, wf *workflows.BookingWorkflows) *BookingHandler {
	return &BookingHandler{
		db:        db,
		dbosCtx:   dbosCtx,
		workflows: wf,
	}
}

// CreateBooking persists a booking and sends the confirmation email via a
// durable workflow. Application failures come back with success=false and
// a message the conversation can surface.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.BookingResult{
			Success: false,
			Message: "Invalid booking payload",
		})
		return
	}

	handle, err := dbos.RunWorkflow(h.dbosCtx, h.workflows.CreateBookingWorkflow, req)
	if err != nil {
		log.Printf("Failed to start CreateBooking workflow: %v", err)
		c.JSON(http.StatusInternalServerError, models.BookingResult{
			Success: false,
			Message: "Failed to process booking",
		})
		return
	}

	result, err := handle.GetResult()
	if err != nil {
		log.Printf("CreateBooking workflow failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.BookingResult{
			Success: false,
			Message: "Failed to process booking",
		})
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	c.JSON(status, result)
}

// ListBookings returns all persisted bookings, newest first.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	rows, err := h.db.QueryContext(c.Request.Context(),
		`SELECT id, destination, duration, package_type, travel_date, customer_name, customer_mobile, customer_email, status, created_at
		 FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		log.Printf("Database error listing bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.Destination, &b.Duration, &b.PackageType, &b.TravelDate,
			&b.CustomerName, &b.CustomerMobile, &b.CustomerEmail, &b.Status, &b.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan booking"})
			return
		}
		bookings = append(bookings, b)
	}

	c.JSON(http.StatusOK, bookings)
}
