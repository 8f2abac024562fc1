package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/philtim/whenisthat/clock"
)

type inkKind int

const (
	inkNone inkKind = iota
	inkRim
	inkMarker
	inkSecond
	inkMinute
	inkHour
	inkActive
	inkCenter
)

type cell struct {
	r    rune
	kind inkKind
}

// canvas is a faceRows x faceCols character grid for one clock face.
type canvas [faceRows][faceCols]cell

// plot puts r at a face-unit offset from the center.
func (c *canvas) plot(p clock.Point, r rune, kind inkKind) {
	col := int(math.Round(float64(2*faceRadius) + 2*p.X))
	row := int(math.Round(float64(faceRadius) + p.Y))
	if row < 0 || row >= faceRows || col < 0 || col >= faceCols {
		return
	}
	c[row][col] = cell{r: r, kind: kind}
}

// hand draws a line from the center along angle.
func (c *canvas) hand(angle, length float64, heavy bool, kind inkKind) {
	r := strokeRune(angle, heavy)
	for d := 0.75; d <= length; d += 0.25 {
		c.plot(clock.HandTip(angle, d), r, kind)
	}
}

// strokeRune picks a line character matching the hand direction.
func strokeRune(angle float64, heavy bool) rune {
	a := math.Mod(clock.NormalizeAngle(angle), 180)
	switch {
	case a < 22.5 || a >= 157.5:
		if heavy {
			return '┃'
		}
		return '│'
	case a < 67.5:
		return '╱'
	case a < 112.5:
		if heavy {
			return '━'
		}
		return '─'
	default:
		return '╲'
	}
}

// faceOptions selects what a face shows.
type faceOptions struct {
	angles     clock.Angles
	showSecond bool
	active     clock.Hand
}

var numerals = map[int]string{0: "12", 3: "3", 6: "6", 9: "9"}

// drawFace renders the analog clock into a canvas.
func drawFace(opts faceOptions) *canvas {
	var c canvas
	radius := float64(faceRadius)

	for _, m := range clock.MinuteMarkers(radius) {
		c.plot(m.Outer, '·', inkRim)
	}
	for _, m := range clock.HourMarkers(radius) {
		label, ok := numerals[m.Index]
		if !ok {
			c.plot(m.Outer, '•', inkMarker)
			continue
		}
		// numerals sit on the outer tick, two-digit ones centred on it
		start := m.Outer
		start.X -= float64(len(label)-1) / 4
		for i, r := range label {
			c.plot(clock.Point{X: start.X + float64(i)/2, Y: start.Y}, r, inkMarker)
		}
	}

	if opts.showSecond {
		c.hand(opts.angles.Second, radius*0.9, false, inkSecond)
	}

	minuteKind, hourKind := inkMinute, inkHour
	switch opts.active {
	case clock.HandMinute:
		minuteKind = inkActive
	case clock.HandHour:
		hourKind = inkActive
	}
	c.hand(opts.angles.Minute, radius*0.8, false, minuteKind)
	c.hand(opts.angles.Hour, radius*0.5, true, hourKind)

	c.plot(clock.Point{}, '◉', inkCenter)
	return &c
}

// lines renders the canvas rows with styles applied.
func (c *canvas) lines(st styles) []string {
	out := make([]string, 0, faceRows)
	for _, row := range c {
		var b strings.Builder
		for _, cl := range row {
			if cl.kind == inkNone {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(st.ink(cl.kind).Render(string(cl.r)))
		}
		out = append(out, b.String())
	}
	return out
}

// String renders the canvas without styling.
func (c *canvas) String() string {
	rows := make([]string, 0, faceRows)
	for _, row := range c {
		var b strings.Builder
		for _, cl := range row {
			if cl.kind == inkNone {
				b.WriteByte(' ')
			} else {
				b.WriteRune(cl.r)
			}
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func (st styles) ink(kind inkKind) lipgloss.Style {
	switch kind {
	case inkRim:
		return st.rim
	case inkMarker:
		return st.marker
	case inkSecond:
		return st.second
	case inkMinute:
		return st.minute
	case inkHour:
		return st.hour
	case inkActive:
		return st.activeHand
	case inkCenter:
		return st.center
	}
	return lipgloss.NewStyle()
}
