package clock

import (
	"time"
)

// Hand identifies an editable clock hand.
type Hand int

const (
	HandNone Hand = iota
	HandHour
	HandMinute
)

func (h Hand) String() string {
	switch h {
	case HandHour:
		return "hour"
	case HandMinute:
		return "minute"
	default:
		return "none"
	}
}

// PickHand decides which hand a press at the given angle grabs. The minute
// hand wins inside its capture radius, then the hour hand inside its own,
// otherwise the angularly closer hand. Exactly one hand is always chosen.
func PickHand(press, hourAngle, minuteAngle float64) Hand {
	hourDist := AngularDistance(press, hourAngle)
	minuteDist := AngularDistance(press, minuteAngle)

	switch {
	case minuteDist < MinuteCaptureRadius:
		return HandMinute
	case hourDist < HourCaptureRadius:
		return HandHour
	case minuteDist < hourDist:
		return HandMinute
	default:
		return HandHour
	}
}

// Gesture is the transient state of one drag, from press to release.
// It is owned by whoever handles pointer input and is dropped on release.
type Gesture struct {
	Target Hand

	prevMinute int
	hasPrev    bool
}

// BeginGesture starts a drag on target. currentMinute seeds the twelve
// o'clock crossing detection for minute drags.
func BeginGesture(target Hand, currentMinute int) *Gesture {
	g := &Gesture{Target: target}
	if target == HandMinute {
		g.prevMinute = currentMinute
		g.hasPrev = true
	}
	return g
}

// Move applies a pointer sample at angle to current and returns the edited
// time in current's location.
func (g *Gesture) Move(angle float64, current time.Time) time.Time {
	switch g.Target {
	case HandMinute:
		minute := MinuteFromAngle(angle)
		adjust := 0
		if g.hasPrev {
			adjust = Rollover(g.prevMinute, minute)
		}
		g.prevMinute = minute
		g.hasPrev = true

		next := setClock(current, current.Hour(), minute)
		if adjust != 0 {
			next = next.Add(time.Duration(adjust) * time.Hour)
		}
		return next

	case HandHour:
		return setClock(current, HourFromAngle(angle, current.Hour()), current.Minute())
	}
	return current
}

func setClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, t.Second(), t.Nanosecond(), t.Location())
}
