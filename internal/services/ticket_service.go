package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/repositories"
	"doonconnect/internal/utils"
)

const ticketValidity = 24 * time.Hour

const ticketIDLen = 9

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// TicketService mints tickets at booking confirmation and owns the stored
// collection's lifecycle.
type TicketService struct {
	Tickets repositories.TicketRepo
	Now     func() time.Time
	Rand    *rand.Rand

	mu        sync.Mutex
	issuedFor map[string]string // idempotency key -> ticket id
}

func NewTicketService(tickets repositories.TicketRepo) *TicketService {
	return &TicketService{
		Tickets:   tickets,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		issuedFor: make(map[string]string),
	}
}

func (s *TicketService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Issue mints a ticket for a completed draft and appends it to the store.
// The fare is the base fare computed during the flow; it becomes immutable
// on the ticket. Issuance is deduplicated on the draft's idempotency key:
// replaying the confirmation never mints a second ticket, it returns the
// first one.
func (s *TicketService) Issue(draft models.BookingDraft, profile models.UserProfile, fare int64) (models.Ticket, error) {
	if draft.IdempotencyKey == "" {
		return models.Ticket{}, domain.ValidationError{Field: "idempotencyKey", Msg: "draft has no idempotency key"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.issuedFor[draft.IdempotencyKey]; ok {
		if t, err := s.Tickets.GetByID(id); err == nil {
			return t, nil
		}
	}

	now := s.now()
	ticketID := s.newTicketID()
	payload := models.QRPayload{
		TicketID:  ticketID,
		Route:     draft.RouteID,
		From:      draft.FromStop,
		To:        draft.ToStop,
		Seats:     draft.SelectedSeats,
		Date:      draft.SelectedDate,
		Time:      draft.SelectedTime,
		Passenger: profile.Phone,
	}
	qr, err := json.Marshal(payload)
	if err != nil {
		return models.Ticket{}, domain.InternalError{Err: err}
	}

	ticket := models.Ticket{
		ID:             ticketID,
		RouteID:        draft.RouteID,
		FromStop:       draft.FromStop,
		ToStop:         draft.ToStop,
		Fare:           fare,
		PurchaseTime:   now,
		ValidUntil:     now.Add(ticketValidity),
		Status:         models.TicketActive,
		QRCode:         string(qr),
		Seats:          draft.SelectedSeats,
		PassengerName:  profile.Name,
		PassengerPhone: profile.Phone,
	}
	if err := s.Tickets.Append(ticket); err != nil {
		return models.Ticket{}, err
	}
	s.issuedFor[draft.IdempotencyKey] = ticketID
	return ticket, nil
}

// newTicketID builds the short uppercased base-36 id. No collision check;
// nine characters of entropy keep the device-local collection safe enough.
func (s *TicketService) newTicketID() string {
	var b strings.Builder
	for i := 0; i < ticketIDLen; i++ {
		b.WriteByte(base36[s.Rand.Intn(len(base36))])
	}
	return strings.ToUpper(b.String())
}

// List returns the stored collection, newest first.
func (s *TicketService) List() ([]models.Ticket, error) {
	return s.Tickets.List()
}

func (s *TicketService) Get(ticketID string) (models.Ticket, error) {
	return s.Tickets.GetByID(ticketID)
}

func (s *TicketService) Remove(ticketID string) error {
	return s.Tickets.Remove(ticketID)
}

// RunExpiry sweeps the collection at the given cadence until ctx is done.
func (s *TicketService) RunExpiry(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := s.Tickets.ExpireDue(s.now()); err != nil {
				utils.LogEvent("", "tickets", "expire_sweep", "sweep failed: "+err.Error())
			} else if n > 0 {
				utils.LogEvent("", "tickets", "expire_sweep", "expired tickets: "+strconv.Itoa(n))
			}
		}
	}
}
