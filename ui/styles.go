package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	appTitle    lipgloss.Style
	modeOn      lipgloss.Style
	modeOff     lipgloss.Style
	panelTitle  lipgloss.Style
	activeTitle lipgloss.Style
	zone        lipgloss.Style
	date        lipgloss.Style
	liveTime    lipgloss.Style
	field       lipgloss.Style
	fieldFocus  lipgloss.Style
	divider     lipgloss.Style
	help        lipgloss.Style
	errorText   lipgloss.Style

	rim        lipgloss.Style
	marker     lipgloss.Style
	second     lipgloss.Style
	minute     lipgloss.Style
	hour       lipgloss.Style
	activeHand lipgloss.Style
	center     lipgloss.Style

	calTitle  lipgloss.Style
	weekday   lipgloss.Style
	day       lipgloss.Style
	otherDay  lipgloss.Style
	today     lipgloss.Style
	selected  lipgloss.Style
	pickTitle lipgloss.Style
	pickRow   lipgloss.Style
	pickGroup lipgloss.Style
	dim       lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		appTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		modeOn:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		modeOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		panelTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		activeTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		zone:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		date:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		liveTime:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		field:       lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("205")),
		fieldFocus:  lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("205")),
		divider:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		errorText:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),

		rim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		marker:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		second:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		minute:     lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		hour:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		activeHand: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		center:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),

		calTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		weekday:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		day:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		otherDay:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		today:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("86")),
		selected:  lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("205")),
		pickTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(1, 0),
		pickRow:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		pickGroup: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
