package repositories

import (
	"testing"
	"time"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
)

func newTicket(id string, status models.TicketStatus, validUntil time.Time) models.Ticket {
	return models.Ticket{
		ID:           id,
		RouteID:      "R2A",
		FromStop:     "isbt",
		ToStop:       "clocktower",
		Fare:         20,
		PurchaseTime: validUntil.Add(-24 * time.Hour),
		ValidUntil:   validUntil,
		Status:       status,
	}
}

func TestTicketRepoNewestFirst(t *testing.T) {
	repo := TicketRepo{Store: NewMemoryStore()}

	now := time.Now()
	if err := repo.Append(newTicket("OLD", models.TicketActive, now.Add(time.Hour))); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(newTicket("NEW", models.TicketActive, now.Add(2*time.Hour))); err != nil {
		t.Fatalf("append: %v", err)
	}

	tickets, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 2 || tickets[0].ID != "NEW" || tickets[1].ID != "OLD" {
		t.Fatalf("collection not newest-first: %+v", tickets)
	}
}

func TestTicketRepoExpireDueIdempotent(t *testing.T) {
	repo := TicketRepo{Store: NewMemoryStore()}
	now := time.Now()

	_ = repo.Append(newTicket("A", models.TicketActive, now.Add(-time.Minute)))
	_ = repo.Append(newTicket("B", models.TicketActive, now.Add(time.Hour)))
	_ = repo.Append(newTicket("C", models.TicketUsed, now.Add(-time.Hour)))

	changed, err := repo.ExpireDue(now)
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if changed != 1 {
		t.Fatalf("first sweep changed %d tickets, want 1", changed)
	}

	changed, err = repo.ExpireDue(now)
	if err != nil {
		t.Fatalf("second expire: %v", err)
	}
	if changed != 0 {
		t.Fatalf("second sweep must be a no-op, changed %d", changed)
	}

	tickets, _ := repo.List()
	for _, tk := range tickets {
		switch tk.ID {
		case "A":
			if tk.Status != models.TicketExpired {
				t.Fatalf("A should be expired, got %s", tk.Status)
			}
		case "B":
			if tk.Status != models.TicketActive {
				t.Fatalf("B should stay active, got %s", tk.Status)
			}
		case "C":
			if tk.Status != models.TicketUsed {
				t.Fatalf("used ticket must never be resurrected, got %s", tk.Status)
			}
		}
	}
}

func TestTicketRepoMalformedBlobCleared(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Put(KeyTickets, []byte("{not json"))

	repo := TicketRepo{Store: store}
	tickets, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("malformed blob should read as empty, got %d", len(tickets))
	}
	if _, ok, _ := store.Get(KeyTickets); ok {
		t.Fatalf("malformed blob should have been cleared")
	}
}

func TestTicketRepoRemove(t *testing.T) {
	repo := TicketRepo{Store: NewMemoryStore()}
	now := time.Now()
	_ = repo.Append(newTicket("KEEP", models.TicketActive, now.Add(time.Hour)))
	_ = repo.Append(newTicket("DROP", models.TicketActive, now.Add(time.Hour)))

	if err := repo.Remove("DROP"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := repo.Remove("DROP"); !domain.IsNotFound(err) {
		t.Fatalf("second remove should be not-found, got %v", err)
	}

	tickets, _ := repo.List()
	if len(tickets) != 1 || tickets[0].ID != "KEEP" {
		t.Fatalf("unexpected collection after remove: %+v", tickets)
	}
}
