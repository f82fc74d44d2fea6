package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/repositories"
	"doonconnect/internal/utils"
)

const sessionValidity = 24 * time.Hour

// AuthService runs the phone+OTP flow and owns the device profile. The OTP
// send is simulated: a fixed demo code, no attempt counter, no lockout.
type AuthService struct {
	Profiles  repositories.ProfileRepo
	Tickets   repositories.TicketRepo
	Secret    []byte
	DemoCode  string
	SendDelay time.Duration
	Now       func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RequestOTP validates the phone number and pretends to send a code.
func (s AuthService) RequestOTP(ctx context.Context, phone string) error {
	if len(utils.DigitsOnly(phone)) != 10 {
		return domain.ValidationError{Field: "phone", Msg: "enter a 10-digit phone number"}
	}
	if s.SendDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.SendDelay):
		}
	}
	utils.LogEvent("", "auth", "otp_request", "otp sent")
	return nil
}

// VerifyOTP checks the code, persists the profile and returns a signed
// session token. A wrong code is a plain validation error.
func (s AuthService) VerifyOTP(ctx context.Context, phone, code, name string) (models.UserProfile, string, error) {
	phone = utils.DigitsOnly(phone)
	if len(phone) != 10 {
		return models.UserProfile{}, "", domain.ValidationError{Field: "phone", Msg: "enter a 10-digit phone number"}
	}
	if s.SendDelay > 0 {
		select {
		case <-ctx.Done():
			return models.UserProfile{}, "", ctx.Err()
		case <-time.After(s.SendDelay):
		}
	}
	if code != s.DemoCode {
		return models.UserProfile{}, "", domain.ValidationError{Field: "otp", Msg: "invalid OTP"}
	}

	now := s.now()
	profile, existed, err := s.Profiles.Get()
	if err != nil {
		return models.UserProfile{}, "", err
	}
	if !existed {
		profile = models.UserProfile{CreatedAt: now}
	}
	if name = utils.TrimOrEmpty(name); name != "" {
		profile.Name = name
	} else if profile.Name == "" {
		profile.Name = "User"
	}
	profile.Phone = phone
	profile.UpdatedAt = now
	if err := s.Profiles.Put(profile); err != nil {
		return models.UserProfile{}, "", err
	}

	token, err := s.issueToken(phone, now)
	if err != nil {
		return models.UserProfile{}, "", err
	}
	utils.LogEvent("", "auth", "otp_verify", "profile verified")
	return profile, token, nil
}

// Profile returns the stored profile.
func (s AuthService) Profile() (models.UserProfile, error) {
	p, ok, err := s.Profiles.Get()
	if err != nil {
		return models.UserProfile{}, err
	}
	if !ok {
		return models.UserProfile{}, domain.NotFoundError{Resource: "profile"}
	}
	return p, nil
}

// UpdateProfile edits name and email; the phone stays bound to the session.
func (s AuthService) UpdateProfile(name, email string) (models.UserProfile, error) {
	p, err := s.Profile()
	if err != nil {
		return models.UserProfile{}, err
	}
	if name = utils.TrimOrEmpty(name); name != "" {
		p.Name = name
	}
	p.Email = utils.TrimOrEmpty(email)
	p.UpdatedAt = s.now()
	if err := s.Profiles.Put(p); err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}

// Logout discards the profile and the whole ticket collection. The coupling
// is deliberate: a device logout leaves no personal data behind.
func (s AuthService) Logout() error {
	if err := s.Profiles.Delete(); err != nil {
		return err
	}
	if err := s.Tickets.DeleteAll(); err != nil {
		return err
	}
	utils.LogEvent("", "auth", "logout", "profile and tickets cleared")
	return nil
}

func (s AuthService) issueToken(phone string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"phone": phone,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionValidity).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, nil
}

// ParseToken validates the session token and returns the phone claim.
func (s AuthService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.UnauthorizedError{Msg: "unexpected signing method"}
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.UnauthorizedError{Msg: "invalid session", Err: err}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.UnauthorizedError{Msg: "invalid session"}
	}
	phone, _ := claims["phone"].(string)
	if phone == "" {
		return "", domain.UnauthorizedError{Msg: "invalid session"}
	}
	return phone, nil
}
