package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/repositories"
)

func newTicketFixture(t *testing.T) *TicketService {
	t.Helper()
	svc := NewTicketService(repositories.TicketRepo{Store: repositories.NewMemoryStore()})
	svc.Now = fixedClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local))
	return svc
}

func sampleDraft(key string) models.BookingDraft {
	return models.BookingDraft{
		ID:             "draft1",
		RouteID:        "R2A",
		FromStop:       "isbt",
		ToStop:         "clocktower",
		SelectedDate:   "2026-09-01",
		SelectedTime:   "10:00",
		SelectedSeats:  []string{"4B", "4C"},
		IdempotencyKey: key,
	}
}

func sampleProfile() models.UserProfile {
	return models.UserProfile{Name: "Asha", Phone: "9876543210"}
}

func TestIssueCarriesJourneyIntoQR(t *testing.T) {
	svc := newTicketFixture(t)

	ticket, err := svc.Issue(sampleDraft("key-1"), sampleProfile(), 20)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var payload models.QRPayload
	if err := json.Unmarshal([]byte(ticket.QRCode), &payload); err != nil {
		t.Fatalf("QR code is not valid JSON: %v", err)
	}
	if payload.TicketID != ticket.ID {
		t.Fatalf("payload ticket id = %s, want %s", payload.TicketID, ticket.ID)
	}
	if payload.Route != "R2A" || payload.From != "isbt" || payload.To != "clocktower" {
		t.Fatalf("journey payload = %+v", payload)
	}
	if payload.Date != "2026-09-01" || payload.Time != "10:00" {
		t.Fatalf("schedule payload = %s %s", payload.Date, payload.Time)
	}
	if payload.Passenger != "9876543210" {
		t.Fatalf("passenger payload = %s", payload.Passenger)
	}
	if len(payload.Seats) != 2 {
		t.Fatalf("seat payload = %v", payload.Seats)
	}
}

func TestIssueTicketIDFormat(t *testing.T) {
	svc := newTicketFixture(t)

	ticket, err := svc.Issue(sampleDraft("key-1"), sampleProfile(), 20)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(ticket.ID) != 9 {
		t.Fatalf("ticket id %q, want 9 characters", ticket.ID)
	}
	if ticket.ID != strings.ToUpper(ticket.ID) {
		t.Fatalf("ticket id %q must be uppercase", ticket.ID)
	}
	if ticket.ValidUntil.Sub(ticket.PurchaseTime) != 24*time.Hour {
		t.Fatalf("validity window = %v, want 24h", ticket.ValidUntil.Sub(ticket.PurchaseTime))
	}
}

func TestIssueDeduplicatesOnKey(t *testing.T) {
	svc := newTicketFixture(t)

	first, err := svc.Issue(sampleDraft("key-1"), sampleProfile(), 20)
	if err != nil {
		t.Fatalf("first Issue: %v", err)
	}
	second, err := svc.Issue(sampleDraft("key-1"), sampleProfile(), 20)
	if err != nil {
		t.Fatalf("second Issue: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("same key minted two tickets: %s then %s", first.ID, second.ID)
	}

	other, err := svc.Issue(sampleDraft("key-2"), sampleProfile(), 20)
	if err != nil {
		t.Fatalf("third Issue: %v", err)
	}
	if other.ID == first.ID {
		t.Fatal("a fresh key must mint a fresh ticket")
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("stored tickets = %d, want 2", len(all))
	}
}

func TestIssueRequiresKey(t *testing.T) {
	svc := newTicketFixture(t)
	if _, err := svc.Issue(sampleDraft(""), sampleProfile(), 20); !domain.IsValidation(err) {
		t.Fatalf("missing key should be a validation error, got %v", err)
	}
}
