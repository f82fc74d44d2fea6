package models

import "time"

// UserProfile is created on first successful OTP verification and kept in
// the blob store until logout.
type UserProfile struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminSession is the persisted admin console session record.
type AdminSession struct {
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issuedAt"`
	Expires  time.Time `json:"expires"`
}

// Expired reports whether the session lapsed at the given instant.
func (s AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.Expires)
}
