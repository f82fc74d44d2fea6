package services

import (
	"testing"
	"time"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/utils"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateLastSlotOfDay(t *testing.T) {
	// 20:55 today with frequency 15: only the 21:00 boundary tick remains.
	now := time.Date(2026, 9, 1, 20, 55, 0, 0, time.Local)
	svc := SlotService{Now: fixedClock(now)}
	route := models.Route{ID: "R2A", Stops: []string{"a", "b"}, Fare: 25, Frequency: 15}

	slots, err := svc.Generate(route, utils.FormatDate(now))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(slots) != 1 || slots[0].Value != "21:00" {
		t.Fatalf("slots = %+v, want exactly 21:00", slots)
	}
}

func TestGenerateNoMoreBusesToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 21, 30, 0, 0, time.Local)
	svc := SlotService{Now: fixedClock(now)}
	route := models.Route{ID: "R1", Stops: []string{"a", "b"}, Fare: 15, Frequency: 10}

	slots, err := svc.Generate(route, utils.FormatDate(now))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty slot list after close of service, got %d", len(slots))
	}
}

func TestGenerateFutureDateFullDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 20, 55, 0, 0, time.Local)
	svc := SlotService{Now: fixedClock(now)}
	route := models.Route{ID: "R1", Stops: []string{"a", "b"}, Fare: 15, Frequency: 30}

	tomorrow := utils.FormatDate(now.AddDate(0, 0, 1))
	slots, err := svc.Generate(route, tomorrow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// 06:00..20:30 at half-hour spacing plus the 21:00 boundary tick.
	if len(slots) != 31 {
		t.Fatalf("slot count = %d, want 31", len(slots))
	}
	if slots[0].Value != "06:00" || slots[len(slots)-1].Value != "21:00" {
		t.Fatalf("slot range = %s..%s", slots[0].Value, slots[len(slots)-1].Value)
	}
}

func TestGenerateBadDate(t *testing.T) {
	svc := SlotService{Now: fixedClock(time.Now())}
	route := models.Route{ID: "R1", Stops: []string{"a", "b"}, Fare: 15, Frequency: 10}
	if _, err := svc.Generate(route, "01-09-2026"); !domain.IsValidation(err) {
		t.Fatalf("bad date should be a validation error, got %v", err)
	}
}

func TestBookingWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	svc := SlotService{Now: fixedClock(now)}

	cases := []struct {
		date string
		want bool
	}{
		{"2026-09-01", true},
		{"2026-10-01", true},
		{"2026-08-31", false},
		{"2026-10-02", false},
	}
	for _, c := range cases {
		got, err := svc.WithinBookingWindow(c.date)
		if err != nil {
			t.Fatalf("WithinBookingWindow(%s): %v", c.date, err)
		}
		if got != c.want {
			t.Fatalf("WithinBookingWindow(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}
