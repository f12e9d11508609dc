package repo

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"capstone/internal/models"
)

const SessionTTL = 30 * 24 * time.Hour

func GenerateToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (r *Repo) CreateSession(ctx context.Context, token string, id models.Identity) error {
	if id.IsAnonymous() {
		return fmt.Errorf("create session: anonymous identity")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, kind, subject_id, subject_name, expires_at) VALUES (?, ?, ?, ?, ?)`,
		token, string(id.Kind), id.ID, id.Name, time.Now().UTC().Add(SessionTTL),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession returns the identity bound to token. Unknown or expired tokens
// resolve to the anonymous identity.
func (r *Repo) GetSession(ctx context.Context, token string) (models.Identity, error) {
	var id models.Identity
	var kind string
	err := r.db.QueryRowContext(ctx,
		`SELECT kind, subject_id, subject_name FROM sessions WHERE token = ? AND expires_at > ?`,
		token, time.Now().UTC(),
	).Scan(&kind, &id.ID, &id.Name)
	if err == sql.ErrNoRows {
		return models.Identity{}, nil
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("get session: %w", err)
	}
	id.Kind = models.IdentityKind(kind)
	return id, nil
}

func (r *Repo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (r *Repo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("clean sessions: %w", err)
	}
	return res.RowsAffected()
}
