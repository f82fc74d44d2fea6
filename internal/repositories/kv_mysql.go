package repositories

import (
	"database/sql"

	"doonconnect/internal/domain"
)

// MySQLStore persists blobs in a single kv_blobs table. It is the production
// implementation of BlobStore.
type MySQLStore struct {
	DB *sql.DB
}

func NewMySQLStore(db *sql.DB) (*MySQLStore, error) {
	s := &MySQLStore{DB: db}
	if err := s.ensureSchema(); err != nil {
		return nil, domain.InternalError{Msg: "failed to prepare kv_blobs table", Err: err}
	}
	return s, nil
}

func (s *MySQLStore) ensureSchema() error {
	ddl := `
CREATE TABLE IF NOT EXISTS kv_blobs (
	k VARCHAR(191) NOT NULL PRIMARY KEY,
	v MEDIUMBLOB NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := s.DB.Exec(ddl)
	return err
}

func (s *MySQLStore) Get(key string) ([]byte, bool, error) {
	var v []byte
	err := s.DB.QueryRow(`SELECT v FROM kv_blobs WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.InternalError{Err: err}
	}
	return v, true, nil
}

func (s *MySQLStore) Put(key string, value []byte) error {
	_, err := s.DB.Exec(`
		INSERT INTO kv_blobs (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)
	`, key, value)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (s *MySQLStore) Delete(key string) error {
	_, err := s.DB.Exec(`DELETE FROM kv_blobs WHERE k = ?`, key)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
