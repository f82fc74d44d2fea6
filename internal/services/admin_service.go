package services

import (
	"math/rand"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
	"doonconnect/internal/repositories"
	"doonconnect/internal/utils"
)

// AdminService guards the console behind the single configured credential
// pair and serves the mock analytics figures.
type AdminService struct {
	Sessions     repositories.AdminSessionRepo
	Secret       []byte
	Email        string
	passwordHash []byte
	Now          func() time.Time
}

func NewAdminService(sessions repositories.AdminSessionRepo, secret []byte, email, password string) (*AdminService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to hash admin password", Err: err}
	}
	return &AdminService{
		Sessions:     sessions,
		Secret:       secret,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: hash,
	}, nil
}

func (s *AdminService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks the credentials, persists the session record and returns a
// signed console token.
func (s *AdminService) Login(email, password string) (models.AdminSession, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.Email {
		return models.AdminSession{}, "", domain.UnauthorizedError{Msg: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return models.AdminSession{}, "", domain.UnauthorizedError{Msg: "invalid email or password"}
	}

	now := s.now()
	session := models.AdminSession{
		Email:    email,
		IssuedAt: now,
		Expires:  now.Add(sessionValidity),
	}
	if err := s.Sessions.Put(session); err != nil {
		return models.AdminSession{}, "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  "admin",
		"iat":   now.Unix(),
		"exp":   session.Expires.Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return models.AdminSession{}, "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	utils.LogEvent("", "admin", "login", "console session opened")
	return session, signed, nil
}

// Session returns the active session; an expired record reads as absent.
func (s *AdminService) Session() (models.AdminSession, error) {
	session, ok, err := s.Sessions.Get(s.now())
	if err != nil {
		return models.AdminSession{}, err
	}
	if !ok {
		return models.AdminSession{}, domain.UnauthorizedError{Msg: "no active admin session"}
	}
	return session, nil
}

func (s *AdminService) Logout() error {
	return s.Sessions.Delete()
}

// AnalyticsPoint is one day of mock ridership figures.
type AnalyticsPoint struct {
	Date      string `json:"date"`
	Riders    int    `json:"riders"`
	Revenue   int64  `json:"revenue"`
	OnTimePct int    `json:"onTimePct"`
}

// Analytics returns randomly generated daily figures for the range. A fresh
// roll on every call reproduces the dashboard fixtures the console charts.
func (s *AdminService) Analytics(from, to string) ([]AnalyticsPoint, error) {
	start, err := utils.ParseDate(from)
	if err != nil {
		return nil, domain.ValidationError{Field: "from", Msg: "expected YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseDate(to)
	if err != nil {
		return nil, domain.ValidationError{Field: "to", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if end.Before(start) {
		return nil, domain.ValidationError{Field: "to", Msg: "range end before start"}
	}
	if end.Sub(start) > 92*24*time.Hour {
		return nil, domain.ValidationError{Field: "to", Msg: "range too large"}
	}

	rng := rand.New(rand.NewSource(s.now().UnixNano()))
	points := []AnalyticsPoint{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		riders := 800 + rng.Intn(1200)
		points = append(points, AnalyticsPoint{
			Date:      utils.FormatDate(d),
			Riders:    riders,
			Revenue:   int64(riders) * int64(15+rng.Intn(20)),
			OnTimePct: 82 + rng.Intn(17),
		})
	}
	return points, nil
}
