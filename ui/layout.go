package ui

import (
	"github.com/philtim/whenisthat/calendar"
	"github.com/philtim/whenisthat/timesync"
)

// Screen geometry. Rendering and mouse hit-testing share these numbers, so
// any change here moves both.
const (
	headerRows = 2

	panelWidth = 34
	gapWidth   = 3

	// faceRadius is in rows; a terminal cell is about twice as tall as it is
	// wide, so columns are doubled.
	faceRadius = 7
	faceRows   = 2*faceRadius + 1
	faceCols   = 4*faceRadius + 1
	faceLeft   = (panelWidth - faceCols) / 2

	cellWidth = 3
	calWidth  = 7 * cellWidth
	calLeft   = (panelWidth - calWidth) / 2

	rowTitle    = 0
	rowZone     = 1
	rowDate     = 2
	rowNow      = 3
	rowTime     = 4
	rowFace     = 6
	rowCalTitle = rowFace + faceRows + 1
	rowWeekdays = rowCalTitle + 1
	rowWeeks    = rowWeekdays + 1
	panelRows   = rowWeeks + calendar.Cells/7
)

func panelIndex(p timesync.Panel) int {
	if p == timesync.Comparison {
		return 1
	}
	return 0
}

func panelAt(i int) timesync.Panel {
	if i == 1 {
		return timesync.Comparison
	}
	return timesync.Local
}

// panelOrigin returns the screen cell of a panel's top-left corner.
func panelOrigin(p timesync.Panel) (x, y int) {
	return panelIndex(p) * (panelWidth + gapWidth), headerRows
}

// faceCenter returns the screen cell at the middle of a panel's clock face.
func faceCenter(p timesync.Panel) (x, y int) {
	ox, oy := panelOrigin(p)
	return ox + faceLeft + 2*faceRadius, oy + rowFace + faceRadius
}

// faceOffset converts a screen cell into an offset from the face center in
// face units (rows). It accepts any cell; callers decide about bounds.
func faceOffset(p timesync.Panel, x, y int) (dx, dy float64) {
	cx, cy := faceCenter(p)
	return float64(x-cx) / 2, float64(y - cy)
}

// faceHit reports which panel's face box contains the cell.
func faceHit(x, y int) (timesync.Panel, bool) {
	for i := 0; i < 2; i++ {
		p := panelAt(i)
		ox, oy := panelOrigin(p)
		left, top := ox+faceLeft, oy+rowFace
		if x >= left && x < left+faceCols && y >= top && y < top+faceRows {
			return p, true
		}
	}
	return timesync.Local, false
}

// calendarTarget is what a click on a calendar landed on.
type calendarTarget int

const (
	calNone calendarTarget = iota
	calPrev
	calNext
	calDay
)

// calendarHit resolves a click to a month arrow or a day cell index.
func calendarHit(x, y int) (timesync.Panel, calendarTarget, int) {
	for i := 0; i < 2; i++ {
		p := panelAt(i)
		ox, oy := panelOrigin(p)
		left := ox + calLeft
		if x < left || x >= left+calWidth {
			continue
		}

		col := x - left
		switch row := y - oy; {
		case row == rowCalTitle && col == 0:
			return p, calPrev, 0
		case row == rowCalTitle && col == calWidth-1:
			return p, calNext, 0
		case row >= rowWeeks && row < rowWeeks+calendar.Cells/7:
			// the third column of a cell is spacing
			if col%cellWidth == cellWidth-1 {
				return p, calNone, 0
			}
			return p, calDay, (row-rowWeeks)*7 + col/cellWidth
		}
	}
	return timesync.Local, calNone, 0
}
