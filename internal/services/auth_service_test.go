package services

import (
	"context"
	"testing"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/repositories"
)

func newAuthFixture(t *testing.T) (AuthService, repositories.TicketRepo) {
	t.Helper()
	store := repositories.NewMemoryStore()
	tickets := repositories.TicketRepo{Store: store}
	svc := AuthService{
		Profiles: repositories.ProfileRepo{Store: store},
		Tickets:  tickets,
		Secret:   []byte("test-secret"),
		DemoCode: "111111",
	}
	return svc, tickets
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _ := newAuthFixture(t)
	if _, _, err := svc.VerifyOTP(context.Background(), "9876543210", "000000", ""); !domain.IsValidation(err) {
		t.Fatalf("wrong code should be a validation error, got %v", err)
	}
	if _, ok, _ := svc.Profiles.Get(); ok {
		t.Fatal("a failed verification must not create a profile")
	}
}

func TestVerifyOTPCreatesProfileAndToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	profile, token, err := svc.VerifyOTP(context.Background(), "98765 43210", "111111", "")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if profile.Phone != "9876543210" {
		t.Fatalf("phone = %s, want digits only", profile.Phone)
	}
	if profile.Name != "User" {
		t.Fatalf("name = %s, want the default placeholder", profile.Name)
	}

	phone, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if phone != "9876543210" {
		t.Fatalf("token phone = %s", phone)
	}
}

func TestVerifyOTPKeepsExistingName(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, _, err := svc.VerifyOTP(context.Background(), "9876543210", "111111", "Asha"); err != nil {
		t.Fatalf("first VerifyOTP: %v", err)
	}
	profile, _, err := svc.VerifyOTP(context.Background(), "9876543210", "111111", "")
	if err != nil {
		t.Fatalf("second VerifyOTP: %v", err)
	}
	if profile.Name != "Asha" {
		t.Fatalf("name = %s, re-verification must not reset it", profile.Name)
	}
}

func TestRequestOTPBadPhone(t *testing.T) {
	svc, _ := newAuthFixture(t)
	if err := svc.RequestOTP(context.Background(), "12345"); !domain.IsValidation(err) {
		t.Fatalf("short phone should be a validation error, got %v", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	svc, _ := newAuthFixture(t)
	_, token, err := svc.VerifyOTP(context.Background(), "9876543210", "111111", "")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	other := svc
	other.Secret = []byte("another-secret")
	if _, err := other.ParseToken(token); !domain.IsUnauthorized(err) {
		t.Fatalf("foreign token should be unauthorized, got %v", err)
	}
}

func TestLogoutClearsProfileAndTickets(t *testing.T) {
	svc, tickets := newAuthFixture(t)

	if _, _, err := svc.VerifyOTP(context.Background(), "9876543210", "111111", "Asha"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if err := tickets.Append(models.Ticket{ID: "ABC123XYZ", Status: models.TicketActive}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok, _ := svc.Profiles.Get(); ok {
		t.Fatal("profile survived logout")
	}
	left, err := tickets.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("tickets survived logout: %d", len(left))
	}
}
