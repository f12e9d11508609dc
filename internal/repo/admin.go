package repo

import (
	"context"
	"database/sql"
	"fmt"

	"capstone/internal/models"
)

func (r *Repo) CreateAdmin(ctx context.Context, email, password string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (email, password) VALUES (?, ?)`,
		email, password,
	)
	if err != nil {
		return 0, fmt.Errorf("insert admin: %w", err)
	}
	return res.LastInsertId()
}

func (r *Repo) FindAdminByCredentials(ctx context.Context, email, password string) (*models.Admin, error) {
	a := &models.Admin{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password FROM admins WHERE email = ? AND password = ? LIMIT 1`,
		email, password,
	).Scan(&a.ID, &a.Email, &a.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return a, nil
}

func (r *Repo) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, password FROM admins ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.Password); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *Repo) AdminListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.title, p.description, p.image_path, p.pdf_path, p.created_by, p.created_at,
			(SELECT COUNT(*) FROM enrollments e WHERE e.project_id = p.id) AS enrollment_count
		 FROM projects p
		 ORDER BY p.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("admin list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.ProjectSummary
	for rows.Next() {
		var p models.ProjectSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImagePath, &p.PDFPath, &p.CreatedBy, &p.CreatedAt, &p.EnrollmentCount); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
