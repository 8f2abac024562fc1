// Package calendar builds the month grid shown under each clock.
package calendar

import (
	"strings"
	"time"
)

// Cells is the fixed size of a month grid: six weeks.
const Cells = 42

// DayCell is one square of the month grid. It is derived on every render
// and never mutated.
type DayCell struct {
	Day int
	// MonthOffset is -1 for trailing days of the previous month, 0 for the
	// viewed month and 1 for leading days of the next month.
	MonthOffset    int
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
}

// ParseWeekStart maps "monday" to time.Monday; anything else starts weeks on
// Sunday.
func ParseWeekStart(s string) time.Weekday {
	if strings.EqualFold(strings.TrimSpace(s), "monday") {
		return time.Monday
	}
	return time.Sunday
}

// Weekdays returns two-letter weekday headings starting at weekStart.
func Weekdays(weekStart time.Weekday) []string {
	names := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		names = append(names, time.Weekday((int(weekStart)+i)%7).String()[:2])
	}
	return names
}

// FirstOfMonth returns midnight on the first day of t's month, in t's zone.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Grid lays out the month containing view as 42 cells. today marks the
// current day in the panel zone; selected marks the displayed value.
func Grid(view, today, selected time.Time, weekStart time.Weekday) []DayCell {
	first := FirstOfMonth(view)
	year, month := first.Year(), first.Month()
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7

	days := make([]DayCell, 0, Cells)

	prev := first.AddDate(0, -1, 0)
	daysInPrev := DaysIn(prev.Year(), prev.Month())
	for i := lead - 1; i >= 0; i-- {
		days = append(days, DayCell{Day: daysInPrev - i, MonthOffset: -1})
	}

	for d := 1; d <= DaysIn(year, month); d++ {
		days = append(days, DayCell{
			Day:            d,
			IsCurrentMonth: true,
			IsToday:        sameDay(today, year, month, d),
			IsSelected:     sameDay(selected, year, month, d),
		})
	}

	for d := 1; len(days) < Cells; d++ {
		days = append(days, DayCell{Day: d, MonthOffset: 1})
	}
	return days
}

func sameDay(t time.Time, year int, month time.Month, day int) bool {
	if t.IsZero() {
		return false
	}
	return t.Year() == year && t.Month() == month && t.Day() == day
}

// PickDay moves current to the date of cell in the grid of view, keeping
// the time of day and location of current.
func PickDay(current, view time.Time, cell DayCell) time.Time {
	target := FirstOfMonth(view).AddDate(0, cell.MonthOffset, 0)
	return time.Date(target.Year(), target.Month(), cell.Day,
		current.Hour(), current.Minute(), current.Second(), current.Nanosecond(), current.Location())
}

// View tracks the month being browsed. It follows the displayed value when
// that value moves to another month, and otherwise stays where the user
// navigated.
type View struct {
	month    time.Time
	followed time.Time
}

// NewView starts browsing at the month of t.
func NewView(t time.Time) View {
	return View{month: FirstOfMonth(t), followed: FirstOfMonth(t)}
}

// Month returns the first day of the browsed month.
func (v View) Month() time.Time { return v.month }

// Title returns the browsed month as "October 2026".
func (v View) Title() string { return v.month.Format("January 2006") }

// Prev browses one month back.
func (v View) Prev() View {
	v.month = v.month.AddDate(0, -1, 0)
	return v
}

// Next browses one month forward.
func (v View) Next() View {
	v.month = v.month.AddDate(0, 1, 0)
	return v
}

// Follow re-centres the view on t when t's month or year differs from the
// last followed value.
func (v View) Follow(t time.Time) View {
	first := FirstOfMonth(t)
	if first.Year() != v.followed.Year() || first.Month() != v.followed.Month() {
		v.month = first
		v.followed = first
	}
	return v
}

// Grid lays out the browsed month.
func (v View) Grid(today, selected time.Time, weekStart time.Weekday) []DayCell {
	return Grid(v.month, today, selected, weekStart)
}
