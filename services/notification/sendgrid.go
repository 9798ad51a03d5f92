package notification

import (
	"fmt"
	"strings"

	"altitude/models"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridNotificationService is the production implementation.
type SendGridNotificationService struct {
	apiKey    string
	fromEmail string
	logger    *zap.Logger
}

func NewSendGridNotificationService(apiKey, fromEmail string, logger *zap.Logger) *SendGridNotificationService {
	return &SendGridNotificationService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		logger:    logger,
	}
}

// SendBookingConfirmation emails the booking summary after creation.
func (s *SendGridNotificationService) SendBookingConfirmation(customerEmail, customerName string, details models.BookingRequest, bookingID string) bool {
	if s.apiKey == "" {
		s.logger.Warn("SENDGRID_API_KEY not set, skipping booking confirmation email",
			zap.String("email", customerEmail), zap.String("bookingID", bookingID))
		return false
	}

	subject := fmt.Sprintf("🎉 Your Altitude Huntsville Party Booking Confirmation - %s", bookingID)
	html := bookingConfirmationHTML(customerName, details, bookingID)
	plain := bookingConfirmationPlain(customerName, details, bookingID)

	return s.send(customerEmail, customerName, subject, plain, html)
}

// SendPaymentConfirmation emails the payment receipt after the
// provider's payment webhook.
func (s *SendGridNotificationService) SendPaymentConfirmation(customerEmail, customerName, bookingID string, amount float64) bool {
	if s.apiKey == "" {
		s.logger.Warn("SENDGRID_API_KEY not set, skipping payment confirmation email",
			zap.String("bookingID", bookingID))
		return false
	}

	subject := fmt.Sprintf("✅ Payment Received - Booking %s", bookingID)
	html := paymentConfirmationHTML(customerName, bookingID, amount)
	plain := fmt.Sprintf("Hi %s,\n\nWe've received your payment of $%.2f for booking %s.\nYour party is all set! We'll see you soon!\n", customerName, amount, bookingID)

	return s.send(customerEmail, customerName, subject, plain, html)
}

func (s *SendGridNotificationService) send(toEmail, toName, subject, plain, html string) bool {
	from := sgmail.NewEmail("Altitude Huntsville", s.fromEmail)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		s.logger.Error("Failed to send email", zap.String("subject", subject), zap.Error(err))
		return false
	}
	if resp.StatusCode != 200 && resp.StatusCode != 202 {
		s.logger.Error("SendGrid rejected email", zap.Int("status", resp.StatusCode))
		return false
	}
	s.logger.Info("Email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return true
}

func bookingConfirmationHTML(customerName string, details models.BookingRequest, bookingID string) string {
	var extras strings.Builder
	if details.BirthdayChildName != "" {
		fmt.Fprintf(&extras, "<p><strong>Birthday Child:</strong> %s</p>", details.BirthdayChildName)
	}
	if details.PrivateRoom {
		extras.WriteString("<p><strong>Private Room:</strong> Yes</p>")
	}

	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #4CAF50;">🎉 Party Booking Confirmed!</h1>
    <p>Hi %s,</p>
    <p>We're so excited to host your party at Altitude Trampoline Park in Huntsville!</p>
    <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
      <h2 style="margin-top: 0;">Booking Details</h2>
      <p><strong>Booking ID:</strong> %s</p>
      <p><strong>Package:</strong> %s</p>
      <p><strong>Number of Jumpers:</strong> %d</p>
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
      %s
    </div>
    <h3>What's Next?</h3>
    <ul>
      <li>Complete your payment using the checkout link provided</li>
      <li>All participants will need to sign waivers (we'll send the link)</li>
      <li>Arrive 15 minutes early on your party date</li>
      <li>Don't forget to bring Altitude grip socks (or purchase at the park)</li>
    </ul>
    <p>See you soon! 🎈</p>
  </div>
</body>
</html>`, customerName, bookingID, details.Package, details.NumJumpers, details.Date, details.TimeSlot, extras.String())
}

func bookingConfirmationPlain(customerName string, details models.BookingRequest, bookingID string) string {
	var sb strings.Builder
	sb.WriteString("Party Booking Confirmed!\n\n")
	fmt.Fprintf(&sb, "Hi %s,\n\n", customerName)
	sb.WriteString("We're excited to host your party at Altitude Trampoline Park in Huntsville!\n\n")
	sb.WriteString("Booking Details:\n")
	fmt.Fprintf(&sb, "- Booking ID: %s\n", bookingID)
	fmt.Fprintf(&sb, "- Package: %s\n", details.Package)
	fmt.Fprintf(&sb, "- Number of Jumpers: %d\n", details.NumJumpers)
	fmt.Fprintf(&sb, "- Date: %s\n", details.Date)
	fmt.Fprintf(&sb, "- Time: %s\n", details.TimeSlot)
	if details.BirthdayChildName != "" {
		fmt.Fprintf(&sb, "- Birthday Child: %s\n", details.BirthdayChildName)
	}
	if details.PrivateRoom {
		sb.WriteString("- Private Room: Yes\n")
	}
	sb.WriteString("\nWhat's Next?\n- Complete your payment using the checkout link\n- All participants need to sign waivers\n- Arrive 15 minutes early\n")
	return sb.String()
}

func paymentConfirmationHTML(customerName, bookingID string, amount float64) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #4CAF50;">✅ Payment Confirmed!</h1>
    <p>Hi %s,</p>
    <p>We've received your payment of $%.2f for booking %s.</p>
    <p>Your party is all set! We'll see you soon! 🎉</p>
  </div>
</body>
</html>`, customerName, amount, bookingID)
}
