package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/dailydoit/dailydoit/internal/service"
	"github.com/dailydoit/dailydoit/models"
	"github.com/stretchr/testify/assert"
)

func TestCurrentCalendar_RedirectsToThisYear(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	c.signIn()

	rr := c.get("/calendar")

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/calendar/2026", rr.Header().Get("Location"))
}

func TestCalendar_Renders(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	c.signIn()

	var gotUserID int64
	var gotYear int
	env.calendars.calendarFn = func(_ context.Context, userID int64, year int) (models.Calendar, error) {
		gotUserID, gotYear = userID, year
		return models.Calendar{
			Year:          year,
			UserNotActive: true,
			Months: []models.CalendarMonth{{
				Name: "May",
				Days: []models.CalendarDay{
					{Day: 8, Date: "2026-05-08", IsComplete: true},
					{Day: 9, Date: "2026-05-09", IsToday: true},
				},
			}},
		}, nil
	}

	rr := c.get("/calendar/2026")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testPrincipal.ID, gotUserID)
	assert.Equal(t, 2026, gotYear)

	body := rr.Body.String()
	assert.Contains(t, body, `data-date="2026-05-08"`)
	assert.Contains(t, body, `class="day complete"`)
	assert.Contains(t, body, `class="day today"`)
	assert.Contains(t, body, "Please confirm your email address")
	assert.Contains(t, body, "/public/calendar.js")
}

func TestCalendar_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
	}{
		{"not a number", "/calendar/twenty", nil},
		{"outside range", "/calendar/1999", service.ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			c := env.client(t)
			c.signIn()

			env.calendars.calendarFn = func(_ context.Context, _ int64, year int) (models.Calendar, error) {
				return models.Calendar{Year: year}, tt.err
			}

			rr := c.get(tt.path)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Empty(t, env.reporter.errs)
		})
	}
}
