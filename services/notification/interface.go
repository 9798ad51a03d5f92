package notification

import "altitude/models"

// NotificationService sends customer-facing emails. Both operations are
// best-effort: a failed send is logged and reported as false, never
// escalated, and never rolls back the booking that triggered it.
type NotificationService interface {
	SendBookingConfirmation(customerEmail, customerName string, details models.BookingRequest, bookingID string) bool
	SendPaymentConfirmation(customerEmail, customerName, bookingID string, amount float64) bool
}
