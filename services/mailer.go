package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"

	"travel-assistant/models"
)

// MailerConfig holds SMTP relay settings.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends booking confirmation emails through an SMTP relay.
type Mailer struct {
	cfg    MailerConfig
	client *mail.Client
}

// NewMailer builds a mailer for the configured relay.
func NewMailer(cfg MailerConfig) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &Mailer{cfg: cfg, client: client}, nil
}

// SendConfirmation emails the trip confirmation to the customer.
func (m *Mailer) SendConfirmation(ctx context.Context, booking models.BookingRequest) error {
	html, err := ConfirmationHTML(booking)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("Sri Tours Assistant", m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(booking.CustomerEmail); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("Booking Confirmed: Trip to %s - Sri Tours", booking.Destination))
	msg.SetBodyString(mail.TypeTextPlain, ConfirmationText(booking))
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

// ConfirmationText renders the plain-text body of the confirmation email.
func ConfirmationText(booking models.BookingRequest) string {
	return fmt.Sprintf(`Dear %s,

Thank you for choosing Sri Tours! We are delighted to confirm your upcoming trip.

TRIP DETAILS:
----------------------------------------
Destination: %s
Duration: %s
Package: %s
Start Date: %s
----------------------------------------

Our travel expert will contact you shortly at %s to finalize the itinerary details.

Warm Regards,
Sri Tours Team
`, booking.CustomerName, booking.Destination, booking.Duration, booking.PackageType,
		booking.TravelDate, booking.CustomerMobile)
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: 'Helvetica', 'Arial', sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; border: 1px solid #e0e0e0; border-radius: 8px; overflow: hidden; }
    .header { background: linear-gradient(135deg, #0f766e, #0e7490); color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; background-color: #ffffff; }
    .booking-box { background-color: #f0fdf4; border: 1px solid #bbf7d0; padding: 20px; border-radius: 6px; margin: 20px 0; }
    .booking-item { margin-bottom: 10px; }
    .label { font-weight: bold; color: #0f766e; width: 100px; display: inline-block; }
    .footer { background-color: #f8fafc; padding: 20px; text-align: center; font-size: 12px; color: #64748b; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Booking Confirmed!</h1>
      <p>Get ready for {{.Destination}}</p>
    </div>
    <div class="content">
      <p>Dear <strong>{{.CustomerName}}</strong>,</p>
      <p>We are thrilled to confirm your booking with Sri Tours. Your adventure awaits!</p>
      <div class="booking-box">
        <div class="booking-item"><span class="label">Destination:</span> {{.Destination}}</div>
        <div class="booking-item"><span class="label">Duration:</span> {{.Duration}}</div>
        <div class="booking-item"><span class="label">Package:</span> {{.PackageType}}</div>
        <div class="booking-item"><span class="label">Date:</span> {{.TravelDate}}</div>
      </div>
      <p>Our travel expert will be in touch with you at <strong>{{.CustomerMobile}}</strong> shortly to handle the finer details.</p>
      <p>Questions? Reply to this email or call us anytime.</p>
    </div>
    <div class="footer">
      <p>&copy; {{.Year}} Sri Tours. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`))

// ConfirmationHTML renders the HTML alternative of the confirmation email.
func ConfirmationHTML(booking models.BookingRequest) (string, error) {
	var buf bytes.Buffer
	data := struct {
		models.BookingRequest
		Year int
	}{booking, time.Now().Year()}
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
