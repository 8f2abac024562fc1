package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/philtim/whenisthat/catalog"
	"github.com/philtim/whenisthat/timesync"
)

const pickerVisible = 10

// picker is the timezone selection view for one panel.
type picker struct {
	target  timesync.Panel
	input   textinput.Model
	results []catalog.Option
	cursor  int
	query   string
}

func newPicker() picker {
	ti := textinput.New()
	ti.Placeholder = "Search city, zone or offset..."
	ti.CharLimit = 50
	ti.Width = 50
	return picker{input: ti}
}

// open resets the picker for target and places the cursor on current.
func (pk *picker) open(target timesync.Panel, cat *catalog.Catalog, current string) {
	pk.target = target
	pk.input.Reset()
	pk.input.Focus()
	pk.cursor = 0
	pk.refresh(cat)
	for i, opt := range pk.results {
		if opt.Zone == current {
			pk.cursor = i
			break
		}
	}
}

// refresh recomputes results for the current query. An empty query lists
// every option grouped by region. A new query moves the cursor to the top.
func (pk *picker) refresh(cat *catalog.Catalog) {
	if pk.input.Value() != pk.query {
		pk.query = pk.input.Value()
		pk.cursor = 0
	}
	if strings.TrimSpace(pk.query) == "" {
		pk.results = nil
		for _, g := range cat.Groups() {
			pk.results = append(pk.results, g.Options...)
		}
	} else {
		pk.results = cat.Search(pk.query, 0)
	}
	if pk.cursor >= len(pk.results) {
		pk.cursor = 0
	}
}

func (pk *picker) up() {
	if pk.cursor > 0 {
		pk.cursor--
	}
}

func (pk *picker) down() {
	if pk.cursor < len(pk.results)-1 {
		pk.cursor++
	}
}

// selected returns the option under the cursor.
func (pk *picker) selected() (catalog.Option, bool) {
	if pk.cursor < 0 || pk.cursor >= len(pk.results) {
		return catalog.Option{}, false
	}
	return pk.results[pk.cursor], true
}

func (pk *picker) view(st styles, title string) string {
	var b strings.Builder

	b.WriteString(st.pickTitle.Render(title + ": choose timezone"))
	b.WriteString("\n\n")
	b.WriteString(pk.input.View())
	b.WriteString("\n\n")

	if len(pk.results) == 0 {
		b.WriteString(st.dim.Render("No timezones found"))
	} else {
		grouped := strings.TrimSpace(pk.input.Value()) == ""
		if !grouped {
			b.WriteString(fmt.Sprintf("Results (%d):\n", len(pk.results)))
		}

		start := 0
		if pk.cursor >= pickerVisible {
			start = pk.cursor - pickerVisible + 1
		}
		end := min(start+pickerVisible, len(pk.results))

		region := ""
		for i := start; i < end; i++ {
			opt := pk.results[i]
			if grouped && opt.Region != region {
				region = opt.Region
				b.WriteString(st.pickGroup.Render(region))
				b.WriteString("\n")
			}

			line := fmt.Sprintf("  %s (%s) %s", opt.Label, opt.Zone, opt.Offset)
			if i == pk.cursor {
				line = st.pickRow.Render("> " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(st.help.Render("↑/↓: Navigate | Enter: Select | ESC: Cancel"))
	return b.String()
}
