package repo

import (
	"context"
	"database/sql"
	"fmt"

	"capstone/internal/models"
)

func (r *Repo) CreateUser(ctx context.Context, name, email, password string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password) VALUES (?, ?, ?)`,
		name, email, password,
	)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

// FindUserByCredentials matches email and password exactly. A miss returns
// a nil user and a nil error.
func (r *Repo) FindUserByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password FROM users WHERE email = ? AND password = ? LIMIT 1`,
		email, password,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (r *Repo) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
