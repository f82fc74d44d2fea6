package repositories

import (
	"encoding/json"
	"time"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
)

// AdminSessionRepo stores the admin console session record.
type AdminSessionRepo struct {
	Store BlobStore
}

// Get returns the current session if present and unexpired. Expired or
// corrupted records are removed and reported as absent.
func (r AdminSessionRepo) Get(now time.Time) (models.AdminSession, bool, error) {
	raw, ok, err := r.Store.Get(KeyAdminSession)
	if err != nil {
		return models.AdminSession{}, false, err
	}
	if !ok {
		return models.AdminSession{}, false, nil
	}
	var s models.AdminSession
	if err := json.Unmarshal(raw, &s); err != nil {
		_ = r.Store.Delete(KeyAdminSession)
		return models.AdminSession{}, false, nil
	}
	if s.Expired(now) {
		_ = r.Store.Delete(KeyAdminSession)
		return models.AdminSession{}, false, nil
	}
	return s, true, nil
}

func (r AdminSessionRepo) Put(s models.AdminSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return r.Store.Put(KeyAdminSession, raw)
}

func (r AdminSessionRepo) Delete() error {
	return r.Store.Delete(KeyAdminSession)
}
