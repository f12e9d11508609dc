package repo

import (
	"context"
	"fmt"
	"time"

	"capstone/internal/models"
)

// Enroll records the user in the project. The unique (user_id, project_id)
// key makes a repeated call a no-op; inserted reports whether a row was
// written. Unknown projects insert nothing.
func (r *Repo) Enroll(ctx context.Context, userID, projectID int64, userName string, at time.Time) (inserted bool, err error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO enrollments (user_id, project_id, user_name, status, enrolled_at)
		 SELECT ?, p.id, ?, ?, ? FROM projects p WHERE p.id = ?
		 ON CONFLICT (user_id, project_id) DO NOTHING`,
		userID, userName, models.EnrollmentStatusEnrolled, at.UTC(), projectID,
	)
	if err != nil {
		return false, fmt.Errorf("insert enrollment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert enrollment: %w", err)
	}
	return n > 0, nil
}

// GetEnrollment returns sql.ErrNoRows (wrapped) when the user is not enrolled.
func (r *Repo) GetEnrollment(ctx context.Context, userID, projectID int64) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, project_id, user_name, status, enrolled_at FROM enrollments WHERE user_id = ? AND project_id = ?`,
		userID, projectID,
	).Scan(&e.UserID, &e.ProjectID, &e.UserName, &e.Status, &e.EnrolledAt)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return e, nil
}

func (r *Repo) ListEnrolledProjectIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT project_id FROM enrollments WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrolled projects: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListRoster returns who enrolled in a project, in storage order.
func (r *Repo) ListRoster(ctx context.Context, projectID int64) ([]models.RosterEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_name, enrolled_at FROM enrollments WHERE project_id = ?`, projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()

	var entries []models.RosterEntry
	for rows.Next() {
		var e models.RosterEntry
		if err := rows.Scan(&e.UserName, &e.EnrolledAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
