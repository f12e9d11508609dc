package handler

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"capstone/internal/models"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestFileURL(t *testing.T) {
	assert.Equal(t, "/static/uploads/images/a.png", fileURL("static/uploads/images/a.png"))
	assert.Equal(t, "/static/uploads/pdfs/b.pdf", fileURL("/static/uploads/pdfs/b.pdf"))
}

func TestNewDashboardView(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Title: "Bridge", ImagePath: "static/uploads/images/b.png"},
		{ID: 2, Title: "Tower", ImagePath: "static/uploads/images/t.png"},
	}

	v := newDashboardView("Ann", projects, []int64{2})

	assert.Equal(t, "Ann", v.UserName)
	assert.Len(t, v.Projects, 2)
	assert.False(t, v.Projects[0].Enrolled)
	assert.True(t, v.Projects[1].Enrolled)
	assert.Equal(t, "/static/uploads/images/t.png", v.Projects[1].ImageURL)
}

func TestNewRosterView(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	v := newRosterView(7, []models.RosterEntry{{UserName: "Ann", EnrolledAt: at}})

	assert.Equal(t, int64(7), v.ProjectID)
	assert.Equal(t, []rosterRow{{UserName: "Ann", EnrolledAt: at}}, v.Entries)

	empty := newRosterView(7, nil)
	assert.NotNil(t, empty.Entries)
	assert.Empty(t, empty.Entries)
}
