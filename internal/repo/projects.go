package repo

import (
	"context"
	"fmt"

	"capstone/internal/models"
)

func (r *Repo) CreateProject(ctx context.Context, p models.Project) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (title, description, image_path, pdf_path, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.ImagePath, p.PDFPath, p.CreatedBy, p.CreatedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	return res.LastInsertId()
}

func (r *Repo) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, image_path, pdf_path, created_by, created_at FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.ImagePath, &p.PDFPath, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (r *Repo) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, image_path, pdf_path, created_by, created_at FROM projects ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImagePath, &p.PDFPath, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
