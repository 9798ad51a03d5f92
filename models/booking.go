package models

// Booking status lifecycle: pending_payment -> paid. Transitions are owned
// by the reservation provider and arrive via webhook, never via chat turns.
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusPaid           = "paid"
	BookingStatusUnknown        = "unknown"
)

// TimeSlot is a single offer returned by the availability query.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Availability is the result of an availability check for one date,
// package, and headcount. Slot order is the provider's own ordering.
type Availability struct {
	Available bool       `json:"available"`
	Slots     []TimeSlot `json:"slots"`
	Times     []string   `json:"times"`
	Message   string     `json:"message"`
	// Fallback marks a deterministic substitute produced while the
	// provider was unreachable.
	Fallback bool `json:"fallback,omitempty"`
}

// BookingRequest is the validated payload submitted to the provider.
type BookingRequest struct {
	Package           string `json:"package"`
	NumJumpers        int    `json:"num_jumpers"`
	Date              string `json:"date"`
	TimeSlot          string `json:"time"`
	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone,omitempty"`
	BirthdayChildName string `json:"birthday_child,omitempty"`
	PrivateRoom       bool   `json:"private_room"`
	Notes             string `json:"notes,omitempty"`
}

// BookingResult is returned by the booking gateway after submission.
type BookingResult struct {
	Success     bool   `json:"success"`
	BookingID   string `json:"booking_id,omitempty"`
	CheckoutURL string `json:"checkout_url,omitempty"`
	Status      string `json:"status,omitempty"`
	Error       string `json:"error,omitempty"`
	// Fallback marks a synthesized placeholder produced while the
	// provider was unreachable. Its checkout URL is not payment-capable.
	Fallback bool `json:"fallback,omitempty"`
}

// BookingOutcome is the structured side-channel set by the agent's
// create-booking tool, threaded back to the chat handler so it never has
// to scrape the reply text for checkout links.
type BookingOutcome struct {
	BookingID   string `json:"booking_id"`
	CheckoutURL string `json:"checkout_url"`
}

// WebhookEvent is the payload delivered by the provider's webhook.
type WebhookEvent struct {
	Event         string  `json:"event"`
	BookingID     string  `json:"booking_id"`
	Amount        float64 `json:"amount,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	CustomerName  string  `json:"customer_name,omitempty"`
}
