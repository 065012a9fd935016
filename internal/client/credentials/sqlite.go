package credentials

import (
	"context"
	"database/sql"
	"errors"

	"github.com/freshkeep/freshkeep-cli/internal/cryptox"
	"github.com/freshkeep/freshkeep-cli/internal/logging"
)

// SQLiteStore keeps the token pair in the credentials table, each value
// sealed with AES-256-GCM under the device key.
type SQLiteStore struct {
	db  *sql.DB
	key []byte
	log logging.Logger
}

func NewSQLiteStore(db *sql.DB, key []byte, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, key: key, log: log.With("component", "credentials")}
}

func (s *SQLiteStore) AccessToken(ctx context.Context) (string, bool) {
	return s.get(ctx, accessTokenName)
}

func (s *SQLiteStore) RefreshToken(ctx context.Context) (string, bool) {
	return s.get(ctx, refreshTokenName)
}

func (s *SQLiteStore) StoreTokens(ctx context.Context, accessToken, refreshToken string) {
	s.set(ctx, accessTokenName, accessToken)
	s.set(ctx, refreshTokenName, refreshToken)
}

func (s *SQLiteStore) ClearTokens(ctx context.Context) {
	for _, name := range []string{accessTokenName, refreshTokenName} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE name = ?`, name); err != nil {
			s.log.Warn(ctx, "failed to clear token", "name", name, "error", err)
		}
	}
}

func (s *SQLiteStore) get(ctx context.Context, name string) (string, bool) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE name = ?`, name).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.log.Warn(ctx, "failed to read token", "name", name, "error", err)
		return "", false
	}

	plaintext, err := cryptox.Open(sealed, s.key)
	if err != nil {
		// Wrong device key or corrupted row; either way the token is unusable.
		s.log.Warn(ctx, "failed to unseal token", "name", name, "error", err)
		return "", false
	}

	return string(plaintext), true
}

func (s *SQLiteStore) set(ctx context.Context, name, value string) {
	if value == "" {
		return
	}

	sealed, err := cryptox.Seal([]byte(value), s.key)
	if err != nil {
		s.log.Warn(ctx, "failed to seal token", "name", name, "error", err)
		return
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credentials (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, sealed)
	if err != nil {
		s.log.Warn(ctx, "failed to store token", "name", name, "error", err)
	}
}
