package services

import (
	"testing"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
)

func routeWithStops(n int, fare int64) models.Route {
	stops := make([]string, n)
	for i := range stops {
		stops[i] = "s" + string(rune('a'+i%26)) + string(rune('0'+i/26))
	}
	return models.Route{ID: "T1", Name: "Test", Stops: stops, Fare: fare, Frequency: 15}
}

func TestComputeFareFlooredAtTen(t *testing.T) {
	// fare=25, 32 stops, indices 0 -> 10, 2 seats: per-seat floors to 10.
	route := routeWithStops(32, 25)
	svc := FareService{}

	got, err := svc.ComputeFare(route, route.Stops[0], route.Stops[10], 2)
	if err != nil {
		t.Fatalf("ComputeFare: %v", err)
	}
	if got != 20 {
		t.Fatalf("fare = %d, want 20", got)
	}
}

func TestComputeFareDistanceBand(t *testing.T) {
	// fare=40, 10 stops, indices 2 -> 5: per-seat = floor(40*3/10) = 12.
	route := routeWithStops(10, 40)
	svc := FareService{}

	got, err := svc.ComputeFare(route, route.Stops[2], route.Stops[5], 1)
	if err != nil {
		t.Fatalf("ComputeFare: %v", err)
	}
	if got != 12 {
		t.Fatalf("fare = %d, want 12", got)
	}
}

func TestComputeFareMonotonicInDistance(t *testing.T) {
	route := routeWithStops(20, 50)
	svc := FareService{}

	prev := int64(0)
	for to := 1; to < len(route.Stops); to++ {
		fare, err := svc.ComputeFare(route, route.Stops[0], route.Stops[to], 1)
		if err != nil {
			t.Fatalf("ComputeFare to=%d: %v", to, err)
		}
		if fare < prev {
			t.Fatalf("fare decreased with distance: %d after %d", fare, prev)
		}
		prev = fare
	}
}

func TestComputeFareUnknownStopRejected(t *testing.T) {
	route := routeWithStops(5, 20)
	svc := FareService{}

	if _, err := svc.ComputeFare(route, "nowhere", route.Stops[2], 1); !domain.IsValidation(err) {
		t.Fatalf("unknown fromStop should be a validation error, got %v", err)
	}
	if _, err := svc.ComputeFare(route, route.Stops[0], "nowhere", 1); !domain.IsValidation(err) {
		t.Fatalf("unknown toStop should be a validation error, got %v", err)
	}
	if _, err := svc.ComputeFare(route, route.Stops[0], route.Stops[2], 0); !domain.IsValidation(err) {
		t.Fatalf("zero seats should be a validation error, got %v", err)
	}
}

func TestBreakdownCardVsCash(t *testing.T) {
	svc := FareService{}

	card, err := svc.Breakdown(100, models.PayCard)
	if err != nil {
		t.Fatalf("Breakdown(card): %v", err)
	}
	if card.ConvenienceFee != 5 || card.GST != 5 || card.Total != 110 {
		t.Fatalf("card breakdown = %+v, want fee=5 gst=5 total=110", card)
	}

	cash, err := svc.Breakdown(100, models.PayCash)
	if err != nil {
		t.Fatalf("Breakdown(cash): %v", err)
	}
	if cash.ConvenienceFee != 0 || cash.GST != 5 || cash.Total != 105 {
		t.Fatalf("cash breakdown = %+v, want fee=0 gst=5 total=105", cash)
	}
}

func TestBreakdownUnknownMethod(t *testing.T) {
	svc := FareService{}
	if _, err := svc.Breakdown(100, "cheque"); !domain.IsValidation(err) {
		t.Fatalf("unknown method should be a validation error, got %v", err)
	}
	// Empty method is a preview and priced like non-cash.
	preview, err := svc.Breakdown(100, "")
	if err != nil {
		t.Fatalf("Breakdown(preview): %v", err)
	}
	if preview.ConvenienceFee != 5 {
		t.Fatalf("preview fee = %d, want 5", preview.ConvenienceFee)
	}
}
