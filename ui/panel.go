package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/philtim/whenisthat/calendar"
	"github.com/philtim/whenisthat/catalog"
	"github.com/philtim/whenisthat/clock"
	"github.com/philtim/whenisthat/feed"
	"github.com/philtim/whenisthat/timesync"
)

// field is a numeric input of the digital time.
type field int

const (
	fieldNone field = iota
	fieldHour
	fieldMinute
)

func (f field) String() string {
	switch f {
	case fieldHour:
		return "hour"
	case fieldMinute:
		return "minute"
	}
	return "none"
}

// panel is one side of the comparison: a zone, its clock and its calendar.
type panel struct {
	kind  timesync.Panel
	title string
	clk   *clock.Clock
	cal   calendar.View

	hourInput   textinput.Model
	minuteInput textinput.Model
}

func newPanel(kind timesync.Panel, title string, loc *time.Location, src clockwork.Clock, shown time.Time) panel {
	return panel{
		kind:        kind,
		title:       title,
		clk:         clock.NewAt(title, loc, src),
		cal:         calendar.NewView(shown),
		hourInput:   newFieldInput(),
		minuteInput: newFieldInput(),
	}
}

func newFieldInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 2
	ti.Width = 2
	return ti
}

// setZone rebinds the panel clock after a zone change.
func (p *panel) setZone(loc *time.Location, src clockwork.Clock) {
	p.clk = clock.NewAt(p.title, loc, src)
}

func (p *panel) input(f field) *textinput.Model {
	if f == fieldMinute {
		return &p.minuteInput
	}
	return &p.hourInput
}

// panelView carries everything one panel render needs.
type panelView struct {
	proj      timesync.Projection
	live      feed.Reading
	today     time.Time
	weekStart time.Weekday
	active    bool
	editing   field
	drag      clock.Hand
}

// render returns exactly panelRows lines of panelWidth cells.
func (p *panel) render(st styles, cat *catalog.Catalog, v panelView) []string {
	lines := make([]string, panelRows)

	titleStyle := st.panelTitle
	title := p.title
	if v.active {
		titleStyle = st.activeTitle
		title = "▸ " + title
	}
	lines[rowTitle] = titleStyle.Render(strings.ToUpper(title))
	lines[rowZone] = st.zone.Render(cat.DisplayName(p.clk.Zone())) + " " +
		st.date.Render(p.clk.FormatUTCOffset())
	lines[rowDate] = st.date.Render(v.proj.Time.Format("Mon, Jan 2 2006"))
	if !v.proj.Live {
		lines[rowNow] = st.dim.Render("now " + p.clk.FormatTime())
	}
	lines[rowTime] = lipgloss.PlaceHorizontal(panelWidth, lipgloss.Center, p.digital(st, v))

	face := drawFace(faceOptions{
		angles:     v.proj.Angles,
		showSecond: v.proj.Live,
		active:     v.drag,
	})
	indent := strings.Repeat(" ", faceLeft)
	for i, line := range face.lines(st) {
		lines[rowFace+i] = indent + line
	}

	for i, line := range p.calendarLines(st, v) {
		lines[rowCalTitle+i] = strings.Repeat(" ", calLeft) + line
	}

	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(panelWidth, lipgloss.Left, line)
	}
	return lines
}

// digital renders HH:MM:SS while live and the two editable fields otherwise.
func (p *panel) digital(st styles, v panelView) string {
	if v.proj.Live {
		return st.liveTime.Render(fmt.Sprintf("%02d:%02d:%02d", v.live.Hour, v.live.Minute, v.live.Second))
	}

	render := func(f field, value int) string {
		if v.active && v.editing == f {
			return st.fieldFocus.Render(p.input(f).View())
		}
		return st.field.Render(fmt.Sprintf("%02d", value))
	}
	return render(fieldHour, v.proj.Hour) + st.liveTime.Render(":") + render(fieldMinute, v.proj.Minute)
}

// cells is the browsed month with today and the displayed date marked.
func (p *panel) cells(v panelView) []calendar.DayCell {
	return p.cal.Grid(v.today, v.proj.Time, v.weekStart)
}

// calendarLines renders the month title, weekday header and six weeks.
func (p *panel) calendarLines(st styles, v panelView) []string {
	out := make([]string, 0, 2+calendar.Cells/7)

	title := lipgloss.PlaceHorizontal(calWidth-2, lipgloss.Center, st.calTitle.Render(p.cal.Title()))
	out = append(out, st.dim.Render("‹")+title+st.dim.Render("›"))

	var b strings.Builder
	for _, name := range calendar.Weekdays(v.weekStart) {
		b.WriteString(st.weekday.Render(name))
		b.WriteByte(' ')
	}
	out = append(out, b.String())

	grid := p.cells(v)
	for w := 0; w < calendar.Cells/7; w++ {
		b.Reset()
		for _, c := range grid[w*7 : w*7+7] {
			b.WriteString(dayStyle(st, c).Render(fmt.Sprintf("%2d", c.Day)))
			b.WriteByte(' ')
		}
		out = append(out, b.String())
	}
	return out
}

func dayStyle(st styles, c calendar.DayCell) lipgloss.Style {
	switch {
	case c.IsSelected:
		return st.selected
	case c.IsToday:
		return st.today
	case !c.IsCurrentMonth:
		return st.otherDay
	}
	return st.day
}
