package services

import (
	"testing"
	"time"

	"doonconnect/internal/domain"
	"doonconnect/internal/repositories"
)

func newAdminFixture(t *testing.T) *AdminService {
	t.Helper()
	sessions := repositories.AdminSessionRepo{Store: repositories.NewMemoryStore()}
	svc, err := NewAdminService(sessions, []byte("test-secret"), "admin@gmail.com", "user@123")
	if err != nil {
		t.Fatalf("NewAdminService: %v", err)
	}
	return svc
}

func TestAdminLogin(t *testing.T) {
	svc := newAdminFixture(t)

	if _, _, err := svc.Login("admin@gmail.com", "wrong"); !domain.IsUnauthorized(err) {
		t.Fatalf("bad password should be unauthorized, got %v", err)
	}
	if _, _, err := svc.Login("someone@else.com", "user@123"); !domain.IsUnauthorized(err) {
		t.Fatalf("unknown email should be unauthorized, got %v", err)
	}

	session, token, err := svc.Login("  ADMIN@gmail.com ", "user@123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Email != "admin@gmail.com" {
		t.Fatalf("session email = %s", session.Email)
	}
	if token == "" {
		t.Fatal("expected a signed console token")
	}

	got, err := svc.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if got.Email != session.Email {
		t.Fatalf("stored session = %+v", got)
	}
}

func TestAdminSessionExpiry(t *testing.T) {
	svc := newAdminFixture(t)
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	svc.Now = fixedClock(base)

	if _, _, err := svc.Login("admin@gmail.com", "user@123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	svc.Now = fixedClock(base.Add(25 * time.Hour))
	if _, err := svc.Session(); !domain.IsUnauthorized(err) {
		t.Fatalf("expired session should read as absent, got %v", err)
	}
}

func TestAdminLogout(t *testing.T) {
	svc := newAdminFixture(t)
	if _, _, err := svc.Login("admin@gmail.com", "user@123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Session(); !domain.IsUnauthorized(err) {
		t.Fatalf("session should be gone after logout, got %v", err)
	}
}

func TestAdminAnalytics(t *testing.T) {
	svc := newAdminFixture(t)

	points, err := svc.Analytics("2026-09-01", "2026-09-07")
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("points = %d, want one per day", len(points))
	}
	for _, p := range points {
		if p.Riders < 800 || p.Riders >= 2000 {
			t.Fatalf("riders out of range: %+v", p)
		}
		if p.OnTimePct < 82 || p.OnTimePct > 98 {
			t.Fatalf("on-time pct out of range: %+v", p)
		}
		if p.Revenue <= 0 {
			t.Fatalf("revenue must be positive: %+v", p)
		}
	}

	if _, err := svc.Analytics("2026-09-07", "2026-09-01"); !domain.IsValidation(err) {
		t.Fatalf("inverted range should be a validation error, got %v", err)
	}
	if _, err := svc.Analytics("2026-01-01", "2026-12-31"); !domain.IsValidation(err) {
		t.Fatalf("oversized range should be a validation error, got %v", err)
	}
	if _, err := svc.Analytics("01/09/2026", "2026-09-07"); !domain.IsValidation(err) {
		t.Fatalf("bad date should be a validation error, got %v", err)
	}
}
