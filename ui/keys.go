package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle    key.Binding
	SwitchTab key.Binding
	Zone      key.Binding
	Hour      key.Binding
	Minute    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	DayBack   key.Binding
	DayFwd    key.Binding
	WeekBack  key.Binding
	WeekFwd   key.Binding
	Help      key.Binding
	Quit      key.Binding

	// field and picker navigation
	Accept key.Binding
	Cancel key.Binding
	Up     key.Binding
	Down   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "live/set time")),
		SwitchTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
		Zone:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "timezone")),
		Hour:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "edit hour")),
		Minute:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "edit minute")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		DayBack:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "day -1")),
		DayFwd:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "day +1")),
		WeekBack:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "week -1")),
		WeekFwd:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "week +1")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SwitchTab, k.Zone, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.SwitchTab, k.Zone, k.Quit},
		{k.Hour, k.Minute, k.Accept, k.Cancel},
		{k.PrevMonth, k.NextMonth, k.DayBack, k.DayFwd, k.WeekBack, k.WeekFwd},
	}
}
