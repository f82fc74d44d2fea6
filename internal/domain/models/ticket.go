package models

import "time"

type TicketStatus string

const (
	TicketActive  TicketStatus = "active"
	TicketUsed    TicketStatus = "used"
	TicketExpired TicketStatus = "expired"
)

// Ticket is an issued, time-bounded proof of purchase. Fare and QR payload
// are fixed at issuance and never recomputed.
type Ticket struct {
	ID             string       `json:"id"`
	RouteID        string       `json:"routeId"`
	FromStop       string       `json:"fromStop"`
	ToStop         string       `json:"toStop"`
	Fare           int64        `json:"fare"`
	PurchaseTime   time.Time    `json:"purchaseTime"`
	ValidUntil     time.Time    `json:"validUntil"`
	Status         TicketStatus `json:"status"`
	QRCode         string       `json:"qrCode"`
	Seats          []string     `json:"seats,omitempty"`
	PassengerName  string       `json:"passengerName,omitempty"`
	PassengerPhone string       `json:"passengerPhone,omitempty"`
}

// QRPayload is the serialized contract embedded in the ticket QR code.
// External scanning tooling parses exactly this field set.
type QRPayload struct {
	TicketID  string   `json:"ticketId"`
	Route     string   `json:"route"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Seats     []string `json:"seats"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Passenger string   `json:"passenger"`
}
