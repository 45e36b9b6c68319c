package models

import "time"

// DateLayout is the wire and storage layout of calendar days.
const DateLayout = "2006-01-02"

// Day marks a calendar date as done for a user.
type Day struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"-"`
	Date   time.Time `json:"date"`
}

// DayRequest is the JSON body of POST and DELETE /day.
type DayRequest struct {
	Date string `json:"date"`
}

// DayResponse is the JSON answer of the day endpoints.
type DayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Calendar is the view model of a user's year.
type Calendar struct {
	Year   int
	Months []CalendarMonth

	// UserNotActive is set while the account email is not confirmed.
	UserNotActive bool
	// NoDaysComplete is set when the year has no completed day.
	NoDaysComplete bool

	PrevYear    int
	NextYear    int
	ShowYearNav bool
	HasPrevYear bool
	HasNextYear bool
	TodayISO    string
}

// CalendarMonth groups the days of one month.
type CalendarMonth struct {
	Name string
	Days []CalendarDay
}

// CalendarDay is one cell of the calendar.
type CalendarDay struct {
	Day        int
	Date       string
	IsComplete bool
	IsToday    bool
}
