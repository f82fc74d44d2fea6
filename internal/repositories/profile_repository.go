package repositories

import (
	"encoding/json"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
)

// ProfileRepo stores the single device-scoped user profile.
type ProfileRepo struct {
	Store BlobStore
}

// Get returns the stored profile. A corrupted record is discarded, matching
// the client's recovery behavior.
func (r ProfileRepo) Get() (models.UserProfile, bool, error) {
	raw, ok, err := r.Store.Get(KeyUserProfile)
	if err != nil {
		return models.UserProfile{}, false, err
	}
	if !ok {
		return models.UserProfile{}, false, nil
	}
	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		_ = r.Store.Delete(KeyUserProfile)
		return models.UserProfile{}, false, nil
	}
	return p, true, nil
}

func (r ProfileRepo) Put(p models.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return r.Store.Put(KeyUserProfile, raw)
}

func (r ProfileRepo) Delete() error {
	return r.Store.Delete(KeyUserProfile)
}
