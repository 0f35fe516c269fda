// Package workflows contains the DBOS durable workflows behind the
// booking submission gateway: persist the booking, then email the
// confirmation. A crash between steps resumes from the last completed
// step instead of double-sending.
package workflows

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/dbos-inc/dbos-transact-golang/dbos"
	"github.com/google/uuid"

	"travel-assistant/models"
)

// DBStatus values reported back to booking clients.
const (
	DBStatusSaved   = "saved"
	DBStatusFailed  = "failed"
	DBStatusSkipped = "skipped"
)

// ConfirmationSender delivers the booking confirmation email.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, booking models.BookingRequest) error
}

// BookingWorkflows contains DBOS workflows for booking operations.
type BookingWorkflows struct {
	db     *sql.DB
	mailer ConfirmationSender
}

// NewBookingWorkflows creates a new BookingWorkflows instance. db may be
// nil when no datastore is configured; bookings are then processed
// email-only with DBStatus "skipped".
func NewBookingWorkflows(db *sql.DB, mailer ConfirmationSender) *BookingWorkflows {
	return &BookingWorkflows{db: db, mailer: mailer}
}

// CreateBookingWorkflow durably persists a booking and sends the
// confirmation email. A database failure downgrades DBStatus but does not
// abort the booking; an email failure makes the whole submission report
// failure so the conversation can tell the customer.
func (w *BookingWorkflows) CreateBookingWorkflow(ctx dbos.DBOSContext, booking models.BookingRequest) (models.BookingResult, error) {
	dbStatus, err := dbos.RunAsStep(ctx, func(stepCtx context.Context) (string, error) {
		return w.saveBooking(stepCtx, booking)
	})
	if err != nil {
		dbStatus = DBStatusFailed
	}

	_, emailErr := dbos.RunAsStep(ctx, func(stepCtx context.Context) (bool, error) {
		return true, w.mailer.SendConfirmation(stepCtx, booking)
	})
	if emailErr != nil {
		log.Printf("Confirmation email failed: %v", emailErr)
	}
	return bookingOutcome(dbStatus, emailErr), nil
}

// bookingOutcome shapes the gateway result. A database failure is only
// reported through DBStatus; a failed confirmation email fails the whole
// submission so the conversation can tell the customer.
func bookingOutcome(dbStatus string, emailErr error) models.BookingResult {
	if emailErr != nil {
		return models.BookingResult{
			Success:  false,
			Message:  "Failed to process booking",
			DBStatus: dbStatus,
		}
	}
	return models.BookingResult{
		Success:  true,
		Message:  "Booking processed successfully",
		DBStatus: dbStatus,
	}
}

// saveBooking inserts the booking row. Insert errors are reported through
// the returned status so the workflow can continue to the email step.
func (w *BookingWorkflows) saveBooking(ctx context.Context, booking models.BookingRequest) (string, error) {
	if w.db == nil {
		return DBStatusSkipped, nil
	}

	_, err := w.db.ExecContext(ctx,
		`INSERT INTO bookings (id, destination, duration, package_type, travel_date, customer_name, customer_mobile, customer_email, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.New(), booking.Destination, booking.Duration, booking.PackageType, booking.TravelDate,
		booking.CustomerName, booking.CustomerMobile, booking.CustomerEmail, "confirmed", time.Now())
	if err != nil {
		log.Printf("Failed to save booking: %v", err)
		return DBStatusFailed, nil
	}
	return DBStatusSaved, nil
}
