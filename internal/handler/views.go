package handler

import (
	"path/filepath"
	"strings"
	"time"

	"capstone/internal/models"
)

type projectCard struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Enrolled    bool
}

type dashboardView struct {
	UserName string
	Projects []projectCard
}

type projectView struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	PDFURL      string
	CreatedAt   time.Time
	EnrolledAt  time.Time
}

type adminProjectRow struct {
	ID              int64
	Title           string
	ImageURL        string
	PDFURL          string
	CreatedAt       time.Time
	EnrollmentCount int
}

type adminDashboardView struct {
	UserCount int
	Projects  []adminProjectRow
}

type rosterRow struct {
	UserName   string
	EnrolledAt time.Time
}

type rosterView struct {
	ProjectID int64
	Entries   []rosterRow
}

// fileURL maps a stored upload path to the URL it is served under.
func fileURL(path string) string {
	return "/" + strings.TrimPrefix(filepath.ToSlash(path), "/")
}

func newDashboardView(name string, projects []models.Project, enrolledIDs []int64) dashboardView {
	enrolled := make(map[int64]bool, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = true
	}

	v := dashboardView{UserName: name, Projects: make([]projectCard, 0, len(projects))}
	for _, p := range projects {
		v.Projects = append(v.Projects, projectCard{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			ImageURL:    fileURL(p.ImagePath),
			Enrolled:    enrolled[p.ID],
		})
	}
	return v
}

func newProjectView(p *models.Project, e *models.Enrollment) projectView {
	return projectView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    fileURL(p.ImagePath),
		PDFURL:      fileURL(p.PDFPath),
		CreatedAt:   p.CreatedAt,
		EnrolledAt:  e.EnrolledAt,
	}
}

func newAdminDashboardView(projects []models.ProjectSummary, userCount int) adminDashboardView {
	v := adminDashboardView{UserCount: userCount, Projects: make([]adminProjectRow, 0, len(projects))}
	for _, p := range projects {
		v.Projects = append(v.Projects, adminProjectRow{
			ID:              p.ID,
			Title:           p.Title,
			ImageURL:        fileURL(p.ImagePath),
			PDFURL:          fileURL(p.PDFPath),
			CreatedAt:       p.CreatedAt,
			EnrollmentCount: p.EnrollmentCount,
		})
	}
	return v
}

func newRosterView(projectID int64, entries []models.RosterEntry) rosterView {
	v := rosterView{ProjectID: projectID, Entries: make([]rosterRow, 0, len(entries))}
	for _, e := range entries {
		v.Entries = append(v.Entries, rosterRow{UserName: e.UserName, EnrolledAt: e.EnrolledAt})
	}
	return v
}
