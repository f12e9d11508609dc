package models

import "time"

type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
}

type Admin struct {
	ID       int64
	Email    string
	Password string
}

type Project struct {
	ID          int64
	Title       string
	Description string
	ImagePath   string
	PDFPath     string
	CreatedBy   int64
	CreatedAt   time.Time
}

// ProjectSummary is a project row with its enrollment count, for the admin listing.
type ProjectSummary struct {
	Project
	EnrollmentCount int
}

const EnrollmentStatusEnrolled = "enrolled"

type Enrollment struct {
	UserID     int64
	ProjectID  int64
	UserName   string
	Status     string
	EnrolledAt time.Time
}

type RosterEntry struct {
	UserName   string
	EnrolledAt time.Time
}
