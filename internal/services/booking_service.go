package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"doonconnect/internal/catalog"
	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/repositories"
	"doonconnect/internal/utils"
)

// Drafts idle longer than this are dropped by the janitor; abandoning the
// flow needs no compensating action since nothing external was reserved.
const draftMaxIdle = 30 * time.Minute

// BookingService drives the linear booking flow
// auth -> stops -> seats -> payment -> confirmation. Transitions only move
// one step forward when the step's guard passes, and one step back at most.
type BookingService struct {
	Catalog      *catalog.Catalog
	Availability *catalog.Availability
	Slots        SlotService
	Fare         FareService
	Issuer       *TicketService
	Profiles     repositories.ProfileRepo
	Now          func() time.Time
	ProcessDelay time.Duration // simulated payment gateway latency

	mu     sync.Mutex
	rand   *rand.Rand
	drafts map[string]*models.BookingDraft
}

func NewBookingService(cat *catalog.Catalog, avail *catalog.Availability, slots SlotService, fare FareService, issuer *TicketService, profiles repositories.ProfileRepo) *BookingService {
	return &BookingService{
		Catalog:      cat,
		Availability: avail,
		Slots:        slots,
		Fare:         fare,
		Issuer:       issuer,
		Profiles:     profiles,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		drafts:       make(map[string]*models.BookingDraft),
	}
}

func (s *BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Open starts a fresh draft for the route. With a cached profile the flow
// skips straight to stop selection; otherwise it starts at auth.
func (s *BookingService) Open(routeID string) (models.BookingDraft, error) {
	if _, err := s.Catalog.RouteByID(routeID); err != nil {
		return models.BookingDraft{}, err
	}

	step := models.StepAuth
	if _, ok, err := s.Profiles.Get(); err != nil {
		return models.BookingDraft{}, err
	} else if ok {
		step = models.StepStopSelection
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := &models.BookingDraft{
		ID:           s.randomIDLocked(12),
		RouteID:      routeID,
		Step:         step,
		SelectedDate: utils.FormatDate(now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.drafts[draft.ID] = draft
	return *draft, nil
}

func (s *BookingService) Get(draftID string) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.draftLocked(draftID)
	if err != nil {
		return models.BookingDraft{}, err
	}
	return *d, nil
}

// CompleteAuth moves auth -> stops once a profile exists.
func (s *BookingService) CompleteAuth(draftID string) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.draftLocked(draftID)
	if err != nil {
		return models.BookingDraft{}, err
	}
	if d.Step != models.StepAuth {
		return models.BookingDraft{}, domain.ConflictError{Resource: "booking", Msg: "not awaiting authentication"}
	}
	if _, ok, err := s.Profiles.Get(); err != nil {
		return models.BookingDraft{}, err
	} else if !ok {
		return models.BookingDraft{}, domain.UnauthorizedError{Msg: "verify your phone number first"}
	}
	d.Step = models.StepStopSelection
	d.UpdatedAt = s.now()
	return *d, nil
}

// StopSelectionInput is a partial update; empty fields are left untouched.
type StopSelectionInput struct {
	FromStop string `json:"fromStop"`
	ToStop   string `json:"toStop"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// SelectStops applies the patch and advances to seat selection once all four
// fields are set and consistent. Changing fromStop clears toStop; changing
// the date clears the selected time.
func (s *BookingService) SelectStops(draftID string, in StopSelectionInput) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.draftLocked(draftID)
	if err != nil {
		return models.BookingDraft{}, err
	}
	if d.Step != models.StepStopSelection {
		return models.BookingDraft{}, domain.ConflictError{Resource: "booking", Msg: "not selecting stops"}
	}
	route, err := s.Catalog.RouteByID(d.RouteID)
	if err != nil {
		return models.BookingDraft{}, err
	}

	if in.FromStop != "" && in.FromStop != d.FromStop {
		if route.StopIndex(in.FromStop) < 0 {
			return models.BookingDraft{}, domain.ValidationError{Field: "fromStop", Msg: "stop not on route"}
		}
		d.FromStop = in.FromStop
		d.ToStop = ""
	}
	if in.ToStop != "" {
		if d.FromStop == "" {
			return models.BookingDraft{}, domain.ValidationError{Field: "toStop", Msg: "select a boarding stop first"}
		}
		toIdx := route.StopIndex(in.ToStop)
		if toIdx < 0 {
			return models.BookingDraft{}, domain.ValidationError{Field: "toStop", Msg: "stop not on route"}
		}
		if toIdx <= route.StopIndex(d.FromStop) {
			return models.BookingDraft{}, domain.ValidationError{Field: "toStop", Msg: "destination must come after the boarding stop"}
		}
		d.ToStop = in.ToStop
	}
	if in.Date != "" && in.Date != d.SelectedDate {
		ok, err := s.Slots.WithinBookingWindow(in.Date)
		if err != nil {
			return models.BookingDraft{}, err
		}
		if !ok {
			return models.BookingDraft{}, domain.ValidationError{Field: "date", Msg: "date must be within the next 30 days"}
		}
		d.SelectedDate = in.Date
		d.SelectedTime = ""
	}
	if in.Time != "" {
		ok, err := s.Slots.HasSlot(route, d.SelectedDate, in.Time)
		if err != nil {
			return models.BookingDraft{}, err
		}
		if !ok {
			return models.BookingDraft{}, domain.ValidationError{Field: "time", Msg: "not an available departure for that date"}
		}
		d.SelectedTime = in.Time
	}

	if d.FromStop != "" && d.ToStop != "" && d.SelectedDate != "" && d.SelectedTime != "" {
		d.Step = models.StepSeatSelection
	}
	d.UpdatedAt = s.now()
	return *d, nil
}

// SelectSeats validates the seat set against the coach layout and the
// occupied/reserved fixtures, then advances to payment. The idempotency key
// is fixed the moment the draft first enters payment.
func (s *BookingService) SelectSeats(draftID string, seats []string) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.draftLocked(draftID)
	if err != nil {
		return models.BookingDraft{}, err
	}
	if d.Step != models.StepSeatSelection {
		return models.BookingDraft{}, domain.ConflictError{Resource: "booking", Msg: "not selecting seats"}
	}

	clean := make([]string, 0, len(seats))
	seen := map[string]bool{}
	for _, seat := range seats {
		seat = strings.ToUpper(strings.TrimSpace(seat))
		if seat == "" || seen[seat] {
			continue
		}
		seen[seat] = true
		clean = append(clean, seat)
	}
	if len(clean) == 0 {
		return models.BookingDraft{}, domain.ValidationError{Field: "seats", Msg: "select at least one seat"}
	}
	for _, seat := range clean {
		if !s.Availability.Known(seat) {
			return models.BookingDraft{}, domain.ValidationError{Field: "seats", Msg: "unknown seat " + seat}
		}
		if !s.Availability.Available(seat) {
			return models.BookingDraft{}, domain.ConflictError{Resource: "seat", Msg: seat + " is not available"}
		}
	}

	d.SelectedSeats = clean
	d.Step = models.StepPayment
	if d.IdempotencyKey == "" {
		d.IdempotencyKey = s.randomIDLocked(16)
	}
	d.UpdatedAt = s.now()
	return *d, nil
}

// Quote prices the draft with its currently selected payment method (or the
// non-cash default when none is chosen yet).
func (s *BookingService) Quote(draftID string) (models.PaymentBreakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.draftLocked(draftID)
	if err != nil {
		return models.PaymentBreakdown{}, err
	}
	return s.quoteLocked(d)
}

func (s *BookingService) quoteLocked(d *models.BookingDraft) (models.PaymentBreakdown, error) {
	if len(d.SelectedSeats) == 0 {
		return models.PaymentBreakdown{}, domain.ValidationError{Field: "seats", Msg: "no seats selected"}
	}
	route, err := s.Catalog.RouteByID(d.RouteID)
	if err != nil {
		return models.PaymentBreakdown{}, err
	}
	base, err := s.Fare.ComputeFare(route, d.FromStop, d.ToStop, len(d.SelectedSeats))
	if err != nil {
		return models.PaymentBreakdown{}, err
	}
	return s.Fare.Breakdown(base, d.PaymentMethod)
}

// SelectPayment records the payment method while in the payment step.
func (s *BookingService) SelectPayment(draftID string, method models.PaymentMethod) (models.PaymentBreakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.draftLocked(draftID)
	if err != nil {
		return models.PaymentBreakdown{}, err
	}
	if d.Step != models.StepPayment {
		return models.PaymentBreakdown{}, domain.ConflictError{Resource: "booking", Msg: "not at payment"}
	}
	if !models.KnownPaymentMethod(method) {
		return models.PaymentBreakdown{}, domain.ValidationError{Field: "paymentMethod", Msg: "unknown payment method"}
	}
	d.PaymentMethod = method
	d.UpdatedAt = s.now()
	return s.quoteLocked(d)
}

// Confirm completes payment and mints the ticket exactly once. Re-confirming
// a finished draft returns the ticket already issued for it.
func (s *BookingService) Confirm(ctx context.Context, draftID string) (models.Ticket, error) {
	s.mu.Lock()
	d, err := s.draftLocked(draftID)
	if err != nil {
		s.mu.Unlock()
		return models.Ticket{}, err
	}

	if d.Step == models.StepConfirmation && d.TicketID != "" {
		ticketID := d.TicketID
		s.mu.Unlock()
		return s.Issuer.Get(ticketID)
	}
	if d.Step != models.StepPayment {
		s.mu.Unlock()
		return models.Ticket{}, domain.ConflictError{Resource: "booking", Msg: "not at payment"}
	}
	if d.PaymentMethod == "" {
		s.mu.Unlock()
		return models.Ticket{}, domain.ValidationError{Field: "paymentMethod", Msg: "choose a payment method"}
	}

	breakdown, err := s.quoteLocked(d)
	if err != nil {
		s.mu.Unlock()
		return models.Ticket{}, err
	}
	draft := *d
	s.mu.Unlock()

	// Simulated gateway latency; honors cancellation.
	if s.ProcessDelay > 0 {
		select {
		case <-ctx.Done():
			return models.Ticket{}, ctx.Err()
		case <-time.After(s.ProcessDelay):
		}
	}

	profile, ok, err := s.Profiles.Get()
	if err != nil {
		return models.Ticket{}, err
	}
	if !ok {
		return models.Ticket{}, domain.UnauthorizedError{Msg: "profile missing"}
	}

	ticket, err := s.Issuer.Issue(draft, profile, breakdown.BaseFare)
	if err != nil {
		return models.Ticket{}, err
	}
	utils.LogEvent("", "booking", "confirm", "issued "+ticket.ID+" for "+utils.FormatINR(breakdown.Total))

	s.mu.Lock()
	if d, derr := s.draftLocked(draftID); derr == nil {
		d.TicketID = ticket.ID
		d.Step = models.StepConfirmation
		d.UpdatedAt = s.now()
	}
	s.mu.Unlock()
	return ticket, nil
}

// Back steps one screen backwards. Only the immediately preceding step is
// ever reachable, and a confirmed booking cannot be reopened.
func (s *BookingService) Back(draftID string) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.draftLocked(draftID)
	if err != nil {
		return models.BookingDraft{}, err
	}
	switch d.Step {
	case models.StepSeatSelection:
		d.Step = models.StepStopSelection
	case models.StepPayment:
		d.Step = models.StepSeatSelection
	default:
		return models.BookingDraft{}, domain.ConflictError{Resource: "booking", Msg: "cannot go back from this step"}
	}
	d.UpdatedAt = s.now()
	return *d, nil
}

// Cancel drops the draft.
func (s *BookingService) Cancel(draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.draftLocked(draftID); err != nil {
		return err
	}
	delete(s.drafts, draftID)
	return nil
}

// RunJanitor drops idle drafts at the given cadence until ctx is done.
func (s *BookingService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dropStale(s.now())
		}
	}
}

func (s *BookingService) dropStale(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, d := range s.drafts {
		if now.Sub(d.UpdatedAt) > draftMaxIdle {
			delete(s.drafts, id)
		}
	}
}

func (s *BookingService) draftLocked(draftID string) (*models.BookingDraft, error) {
	d, ok := s.drafts[draftID]
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	return d, nil
}

func (s *BookingService) randomIDLocked(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36[s.rand.Intn(len(base36))])
	}
	return b.String()
}
