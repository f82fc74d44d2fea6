package services

import (
	"time"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/utils"
)

// Operating hours: first departures at 06:00, ticks enumerated through the
// 21:00 boundary hour.
const (
	operatingStartHour = 6
	operatingEndHour   = 21
)

// Bookings are accepted up to 30 days out.
const bookingWindowDays = 30

// Slot is one candidate departure time.
type Slot struct {
	Value string `json:"value"` // HH:MM
	Label string `json:"label"` // 12-hour display form
}

// SlotService enumerates departure slots for a route and date. Results are
// recomputed on every call; "now" moves between calls so they are never
// cached.
type SlotService struct {
	Now func() time.Time
}

func (s SlotService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// WithinBookingWindow reports whether the date falls in [today, today+30d],
// compared by calendar date.
func (s SlotService) WithinBookingWindow(date string) (bool, error) {
	d, err := utils.ParseDate(date)
	if err != nil {
		return false, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	now := s.now().In(time.Local)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	last := today.AddDate(0, 0, bookingWindowDays)
	return !d.Before(today) && !d.After(last), nil
}

// Generate lists every frequency-spaced tick inside operating hours for the
// date. For today, ticks at or before the current wall-clock time are
// dropped; an empty result means no more buses today and the caller must say
// so instead of offering nothing.
func (s SlotService) Generate(route models.Route, date string) ([]Slot, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if route.Frequency <= 0 {
		return nil, domain.ValidationError{Field: "route", Msg: "route has no departure frequency"}
	}

	now := s.now().In(time.Local)
	isToday := utils.SameLocalDay(day, now)

	slots := []Slot{}
	for hour := operatingStartHour; hour <= operatingEndHour; hour++ {
		for minute := 0; minute < 60; minute += route.Frequency {
			// The boundary hour contributes only its opening tick.
			if hour == operatingEndHour && minute > 0 {
				break
			}
			tick := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
			if isToday && !tick.After(now) {
				continue
			}
			hm := utils.FormatTimeHM(tick)
			slots = append(slots, Slot{Value: hm, Label: utils.DisplayTime(hm)})
		}
	}
	return slots, nil
}

// HasSlot reports whether hm is one of the generated slots for the date.
func (s SlotService) HasSlot(route models.Route, date, hm string) (bool, error) {
	slots, err := s.Generate(route, date)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Value == hm {
			return true, nil
		}
	}
	return false, nil
}
