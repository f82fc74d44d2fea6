package models

import "time"

// BookingStep is one screen of the linear booking flow.
type BookingStep string

const (
	StepAuth          BookingStep = "auth"
	StepStopSelection BookingStep = "stops"
	StepSeatSelection BookingStep = "seats"
	StepPayment       BookingStep = "payment"
	StepConfirmation  BookingStep = "confirmation"
)

type PaymentMethod string

const (
	PayUPI        PaymentMethod = "upi"
	PayCard       PaymentMethod = "card"
	PayWallet     PaymentMethod = "wallet"
	PayNetBanking PaymentMethod = "netbanking"
	PayCash       PaymentMethod = "cash"
)

// KnownPaymentMethod reports whether m is one of the accepted methods.
func KnownPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PayUPI, PayCard, PayWallet, PayNetBanking, PayCash:
		return true
	}
	return false
}

// BookingDraft is the transient state of one in-progress booking session.
// Invariant once both stops are set: toStop comes strictly after fromStop in
// the route sequence. Changing fromStop clears toStop; changing the date
// clears the selected time.
type BookingDraft struct {
	ID             string        `json:"id"`
	RouteID        string        `json:"routeId"`
	Step           BookingStep   `json:"step"`
	FromStop       string        `json:"fromStop,omitempty"`
	ToStop         string        `json:"toStop,omitempty"`
	SelectedDate   string        `json:"selectedDate,omitempty"` // YYYY-MM-DD
	SelectedTime   string        `json:"selectedTime,omitempty"` // HH:MM
	SelectedSeats  []string      `json:"selectedSeats,omitempty"`
	PaymentMethod  PaymentMethod `json:"paymentMethod,omitempty"`
	IdempotencyKey string        `json:"idempotencyKey,omitempty"`
	TicketID       string        `json:"ticketId,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// PaymentBreakdown itemizes the amount due for a draft.
type PaymentBreakdown struct {
	BaseFare       int64         `json:"baseFare"`
	ConvenienceFee int64         `json:"convenienceFee"`
	GST            int64         `json:"gst"`
	Total          int64         `json:"total"`
	Method         PaymentMethod `json:"method"`
}
