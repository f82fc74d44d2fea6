package repositories

import (
	"encoding/json"
	"time"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
)

// TicketRepo stores the user's ticket collection as one JSON blob, newest
// first, matching the shape the web client persisted.
type TicketRepo struct {
	Store BlobStore
}

// List returns all stored tickets. A malformed blob is treated as an empty
// collection and cleared so the next write starts clean.
func (r TicketRepo) List() ([]models.Ticket, error) {
	raw, ok, err := r.Store.Get(KeyTickets)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Ticket{}, nil
	}
	var tickets []models.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		_ = r.Store.Delete(KeyTickets)
		return []models.Ticket{}, nil
	}
	return tickets, nil
}

// Append prepends the ticket so the collection stays newest-first.
func (r TicketRepo) Append(t models.Ticket) error {
	tickets, err := r.List()
	if err != nil {
		return err
	}
	tickets = append([]models.Ticket{t}, tickets...)
	return r.save(tickets)
}

func (r TicketRepo) GetByID(ticketID string) (models.Ticket, error) {
	tickets, err := r.List()
	if err != nil {
		return models.Ticket{}, err
	}
	for _, t := range tickets {
		if t.ID == ticketID {
			return t, nil
		}
	}
	return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
}

func (r TicketRepo) Remove(ticketID string) error {
	tickets, err := r.List()
	if err != nil {
		return err
	}
	kept := tickets[:0]
	found := false
	for _, t := range tickets {
		if t.ID == ticketID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return domain.NotFoundError{Resource: "ticket"}
	}
	return r.save(kept)
}

// ExpireDue flips active tickets past their validity window to expired.
// Used and already-expired tickets are never touched, and nothing is written
// when no ticket changed, so repeated calls are no-ops.
func (r TicketRepo) ExpireDue(now time.Time) (int, error) {
	tickets, err := r.List()
	if err != nil {
		return 0, err
	}
	changed := 0
	for i, t := range tickets {
		if t.Status == models.TicketActive && t.ValidUntil.Before(now) {
			tickets[i].Status = models.TicketExpired
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, r.save(tickets)
}

// DeleteAll removes the whole collection. Invoked on logout.
func (r TicketRepo) DeleteAll() error {
	return r.Store.Delete(KeyTickets)
}

func (r TicketRepo) save(tickets []models.Ticket) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return r.Store.Put(KeyTickets, raw)
}
