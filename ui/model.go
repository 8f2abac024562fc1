// Package ui is the terminal front end: two clock panels sharing one
// instant, a timezone picker, and mouse and keyboard editing.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/philtim/whenisthat/calendar"
	"github.com/philtim/whenisthat/catalog"
	"github.com/philtim/whenisthat/clock"
	"github.com/philtim/whenisthat/feed"
	"github.com/philtim/whenisthat/timesync"
	"github.com/rs/zerolog"
)

// viewState represents the current view state
type viewState int

const (
	viewMain viewState = iota
	viewPicker
)

// Options configures a Model.
type Options struct {
	Store   *timesync.Store
	Feed    *feed.Feed
	Catalog *catalog.Catalog
	Logger  zerolog.Logger
	// WeekStart is the first column of the calendars.
	WeekStart time.Weekday
}

// dragState is the gesture in progress and the panel it started on.
type dragState struct {
	panel   timesync.Panel
	gesture *clock.Gesture
}

// Model represents the application state
type Model struct {
	// Core data
	store   *timesync.Store
	feed    *feed.Feed
	catalog *catalog.Catalog
	log     zerolog.Logger

	keys      keyMap
	help      help.Model
	st        styles
	weekStart time.Weekday

	// Panels, indexed by panelIndex
	panels  [2]panel
	active  timesync.Panel
	editing field
	now     time.Time

	// View state
	state    viewState
	picker   picker
	drag     *dragState
	viewport viewport.Model
	ready    bool
	err      error
	width    int
	height   int
	quitting bool
}

// New builds the model. The store decides the initial mode and zones.
func New(opts Options) Model {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	now := opts.Feed.Now()
	src := opts.Feed.Clock()
	store := opts.Store

	m := Model{
		store:     store,
		feed:      opts.Feed,
		catalog:   cat,
		log:       opts.Logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		st:        defaultStyles(),
		weekStart: opts.WeekStart,
		active:    timesync.Local,
		now:       now,
		state:     viewMain,
		picker:    newPicker(),
	}
	for i := range m.panels {
		kind := panelAt(i)
		title := "Your Time"
		if kind == timesync.Comparison {
			title = "Their Time"
		}
		m.panels[i] = newPanel(kind, title, store.Zone(kind), src, store.Projection(kind, now).Time)
	}
	return m
}

// Init starts the live feed
func (m Model) Init() tea.Cmd {
	return m.feed.Tick()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case feed.TickMsg:
		// ticks from before a visibility change end their chain here
		if !m.feed.Current(msg) {
			return m, nil
		}
		m.now = msg.Time
		m.follow()
		cmds = append(cmds, m.feed.Tick())

	case tea.FocusMsg:
		if m.feed.SetVisible(true) {
			m.log.Debug().Dur("interval", m.feed.Interval()).Msg("view visible")
			cmds = append(cmds, m.feed.Tick())
		}

	case tea.BlurMsg:
		if m.feed.SetVisible(false) {
			m.log.Debug().Dur("interval", m.feed.Interval()).Msg("view hidden")
			cmds = append(cmds, m.feed.Tick())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if !m.ready {
			// Reserve space for the help bar (1 newline + 1 bar line)
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.KeyMap = scrollKeys()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}

	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	// Scrolling for terminals shorter than the panels
	if m.ready && m.state == viewMain && m.err == nil {
		m.viewport.SetContent(m.renderMain())
		m.viewport, cmd = m.viewport.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// scrollKeys keeps the arrow keys free for the calendars.
func scrollKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}
}

func (m *Model) panel(p timesync.Panel) *panel {
	return &m.panels[panelIndex(p)]
}

func other(p timesync.Panel) timesync.Panel {
	if p == timesync.Local {
		return timesync.Comparison
	}
	return timesync.Local
}

// today is the live date in the zone of p.
func (m *Model) today(p timesync.Panel) time.Time {
	return m.now.In(m.store.Zone(p))
}

// follow moves each calendar to the month its panel displays.
func (m *Model) follow() {
	for i := range m.panels {
		pn := &m.panels[i]
		pn.cal = pn.cal.Follow(m.store.Projection(pn.kind, m.now).Time)
	}
}

// handleKeyPress handles keyboard input based on current view state
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}

	if m.err != nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return tea.Quit
		case key.Matches(msg, m.keys.Cancel, m.keys.Accept):
			m.err = nil
		}
		return nil
	}

	switch {
	case m.state == viewPicker:
		return m.handlePickerKeys(msg)
	case m.editing != fieldNone:
		return m.handleFieldKeys(msg)
	}
	return m.handleMainKeys(msg)
}

// handleMainKeys handles keys in main view
func (m *Model) handleMainKeys(msg tea.KeyMsg) tea.Cmd {
	custom := m.store.Mode() == timesync.Custom

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.toggle()

	case key.Matches(msg, m.keys.SwitchTab):
		m.active = other(m.active)

	case key.Matches(msg, m.keys.Zone):
		m.state = viewPicker
		m.picker.open(m.active, m.catalog, m.store.Zone(m.active).String())
		return textinput.Blink

	case key.Matches(msg, m.keys.Hour):
		if custom {
			return m.beginEdit(fieldHour)
		}

	case key.Matches(msg, m.keys.Minute):
		if custom {
			return m.beginEdit(fieldMinute)
		}

	case key.Matches(msg, m.keys.PrevMonth):
		pn := m.panel(m.active)
		pn.cal = pn.cal.Prev()

	case key.Matches(msg, m.keys.NextMonth):
		pn := m.panel(m.active)
		pn.cal = pn.cal.Next()

	case key.Matches(msg, m.keys.DayBack):
		m.shiftDays(-1)

	case key.Matches(msg, m.keys.DayFwd):
		m.shiftDays(1)

	case key.Matches(msg, m.keys.WeekBack):
		m.shiftDays(-7)

	case key.Matches(msg, m.keys.WeekFwd):
		m.shiftDays(7)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return nil
}

// toggle flips between Live and Custom. Leaving Custom drops any gesture or
// field edit in progress.
func (m *Model) toggle() {
	m.now = m.feed.Now()
	m.store.Toggle(m.now)
	if m.store.Mode() == timesync.Live {
		m.drag = nil
		m.endEdit()
	}
	m.follow()
	m.log.Debug().
		Stringer("mode", m.store.Mode()).
		Time("instant", m.store.Instant()).
		Msg("mode toggled")
}

// beginEdit focuses a numeric field of the active panel, prefilled with the
// displayed value.
func (m *Model) beginEdit(f field) tea.Cmd {
	m.endEdit()

	proj := m.store.Projection(m.active, m.now)
	value := proj.Hour
	if f == fieldMinute {
		value = proj.Minute
	}

	in := m.panel(m.active).input(f)
	in.SetValue(fmt.Sprintf("%02d", value))
	in.CursorEnd()
	m.editing = f
	return in.Focus()
}

func (m *Model) endEdit() {
	for i := range m.panels {
		m.panels[i].hourInput.Blur()
		m.panels[i].minuteInput.Blur()
	}
	m.editing = fieldNone
}

// handleFieldKeys handles keys while a numeric field has focus. Every change
// is applied immediately.
func (m *Model) handleFieldKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Accept, m.keys.Cancel):
		m.endEdit()
		return nil

	case key.Matches(msg, m.keys.SwitchTab):
		next := fieldMinute
		if m.editing == fieldMinute {
			next = fieldHour
		}
		return m.beginEdit(next)
	}

	in := m.panel(m.active).input(m.editing)
	before := in.Value()

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	raw := clock.SanitizeField(in.Value())
	if raw != in.Value() {
		in.SetValue(raw)
	}
	if raw != before {
		m.applyField(m.editing, raw)
	}
	return cmd
}

func (m *Model) applyField(f field, raw string) {
	w := m.store.Projection(m.active, m.now).WallClock()
	switch f {
	case fieldHour:
		w = w.WithHour(clock.ParseHour(raw))
	case fieldMinute:
		w = w.WithMinute(clock.ParseMinute(raw))
	}
	m.applyEdit(m.active, w)
}

// shiftDays moves the selected date of the active panel.
func (m *Model) shiftDays(days int) {
	if m.store.Mode() != timesync.Custom {
		return
	}
	t := m.store.Projection(m.active, m.now).Time.AddDate(0, 0, days)
	m.applyEdit(m.active, timesync.WallClockOf(t))
}

// applyEdit stores wall-clock fields edited on p. Edits outside Custom mode
// are dropped.
func (m *Model) applyEdit(p timesync.Panel, w timesync.WallClock) {
	if m.store.Mode() != timesync.Custom {
		return
	}
	m.store.ApplyEdit(p, w)
	m.follow()
	m.log.Debug().
		Stringer("panel", p).
		Time("instant", m.store.Instant()).
		Msg("edit applied")
}

// handlePickerKeys handles keys in the timezone picker
func (m *Model) handlePickerKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePicker()
		return nil

	case key.Matches(msg, m.keys.Up):
		m.picker.up()
		return nil

	case key.Matches(msg, m.keys.Down):
		m.picker.down()
		return nil

	case key.Matches(msg, m.keys.Accept):
		if opt, ok := m.picker.selected(); ok {
			m.setZone(m.picker.target, opt.Zone)
		}
		m.closePicker()
		return nil
	}

	var cmd tea.Cmd
	m.picker.input, cmd = m.picker.input.Update(msg)
	m.picker.refresh(m.catalog)
	return cmd
}

func (m *Model) closePicker() {
	m.picker.input.Blur()
	m.state = viewMain
}

// setZone changes the zone of p. Unknown zones end up in the error view and
// leave the store untouched.
func (m *Model) setZone(p timesync.Panel, name string) {
	var err error
	if p == timesync.Comparison {
		err = m.store.SetComparisonZone(name)
	} else {
		err = m.store.SetLocalZone(name)
	}
	if err != nil {
		m.log.Error().Err(err).Stringer("panel", p).Msg("zone change rejected")
		m.err = err
		return
	}

	m.panel(p).setZone(m.store.Zone(p), m.feed.Clock())
	m.follow()

	ev := m.log.Debug().Stringer("panel", p).Str("zone", name)
	if opt, ok := m.catalog.Lookup(name); ok {
		ev = ev.Str("region", opt.Region).Str("offset", opt.Offset)
	}
	ev.Time("instant", m.store.Instant()).Msg("zone changed")
}

// handleMouse turns terminal mouse events into clock gestures and calendar
// clicks.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.err != nil {
		return
	}
	if m.state == viewPicker {
		// a click anywhere closes the picker without a selection
		if msg.Action == tea.MouseActionPress {
			m.closePicker()
		}
		return
	}

	x, y := msg.X, msg.Y
	if m.ready {
		y += m.viewport.YOffset
	}

	switch msg.Action {
	case tea.MouseActionRelease:
		if m.drag != nil {
			m.log.Debug().Stringer("hand", m.drag.gesture.Target).Msg("drag ended")
		}
		m.drag = nil

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.dragTo(x, y)
		}

	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.press(x, y)
		}
	}
}

func (m *Model) press(x, y int) {
	// a press anywhere takes focus away from a numeric field
	m.endEdit()

	if p, ok := faceHit(x, y); ok {
		m.active = p
		if m.store.Mode() != timesync.Custom {
			return
		}

		proj := m.store.Projection(p, m.now)
		angle := clock.PointerAngle(faceOffset(p, x, y))
		hand := clock.PickHand(angle, proj.Angles.Hour, proj.Angles.Minute)
		m.drag = &dragState{panel: p, gesture: clock.BeginGesture(hand, proj.Minute)}
		m.log.Debug().Stringer("panel", p).Stringer("hand", hand).Msg("drag started")
		return
	}

	p, target, idx := calendarHit(x, y)
	pn := m.panel(p)
	switch target {
	case calPrev:
		pn.cal = pn.cal.Prev()
	case calNext:
		pn.cal = pn.cal.Next()
	case calDay:
		m.active = p
		if m.store.Mode() != timesync.Custom {
			return
		}
		proj := m.store.Projection(p, m.now)
		grid := pn.cells(m.viewOf(p))
		picked := calendar.PickDay(proj.Time, pn.cal.Month(), grid[idx])
		m.applyEdit(p, timesync.WallClockOf(picked))
	}
}

func (m *Model) dragTo(x, y int) {
	p := m.drag.panel
	angle := clock.PointerAngle(faceOffset(p, x, y))
	current := m.store.Projection(p, m.now).Time
	m.applyEdit(p, timesync.WallClockOf(m.drag.gesture.Move(angle, current)))
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress ESC to continue, 'q' to quit", m.err)
	}

	if !m.ready {
		return "Initializing..."
	}

	switch m.state {
	case viewPicker:
		return m.picker.view(m.st, m.panel(m.picker.target).title)
	}

	m.viewport.SetContent(m.renderMain())
	return fmt.Sprintf("%s\n%s", m.viewport.View(), m.help.View(m.keys))
}

// renderMain renders the header and the two panels side by side
func (m Model) renderMain() string {
	rows := make([]string, 0, headerRows+panelRows)
	rows = append(rows, m.renderHeader()...)

	left := m.renderPanel(timesync.Local)
	right := m.renderPanel(timesync.Comparison)
	gap := m.st.divider.Render(" │ ")
	for i := range left {
		rows = append(rows, left[i]+gap+right[i])
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHeader() []string {
	mode := m.st.modeOn.Render("● LIVE")
	hint := "space: set a time"
	if m.store.Mode() == timesync.Custom {
		mode = m.st.modeOff.Render("○ ") + m.st.modeOn.Render("SET TIME")
		hint = "drag the hands, click a day, h/m to type"
	}
	return []string{
		m.st.appTitle.Render("WHEN IS THAT") + "  " + mode,
		m.st.dim.Render(hint),
	}
}

func (m Model) renderPanel(p timesync.Panel) []string {
	return m.panel(p).render(m.st, m.catalog, m.viewOf(p))
}

// viewOf gathers what the panel for p displays at the latest tick.
func (m *Model) viewOf(p timesync.Panel) panelView {
	var hand clock.Hand
	if m.drag != nil && m.drag.panel == p {
		hand = m.drag.gesture.Target
	}
	return panelView{
		proj:      m.store.Projection(p, m.now),
		live:      feed.ReadingAt(m.now, m.store.Zone(p)),
		today:     m.today(p),
		weekStart: m.weekStart,
		active:    m.active == p,
		editing:   m.editing,
		drag:      hand,
	}
}
