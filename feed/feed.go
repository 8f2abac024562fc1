// Package feed supplies the current time per zone at a display-appropriate
// cadence: every frame while the view is visible, once a second otherwise.
package feed

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

const (
	// FrameInterval is the tick cadence while the view is visible.
	FrameInterval = time.Second / 30
	// HiddenInterval is the tick cadence while the view is not visible.
	HiddenInterval = time.Second
)

// Reading is the current instant in one zone, split into clock fields.
type Reading struct {
	Instant     time.Time
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// ReadingAt splits t, expressed in loc, into a Reading.
func ReadingAt(t time.Time, loc *time.Location) Reading {
	t = t.In(loc)
	return Reading{
		Instant:     t,
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// TickMsg is delivered to the bubbletea program on every feed tick.
type TickMsg struct {
	Time time.Time
	// Gen is the cadence generation the tick was scheduled under.
	Gen uint64
}

// Feed is the live time source.
type Feed struct {
	clock clockwork.Clock

	mu      sync.Mutex
	visible bool
	gen     uint64
	changed chan struct{}
}

// New creates a visible feed over src. A nil src uses the real clock.
func New(src clockwork.Clock) *Feed {
	if src == nil {
		src = clockwork.NewRealClock()
	}
	return &Feed{
		clock:   src,
		visible: true,
		changed: make(chan struct{}),
	}
}

// Clock returns the underlying time source.
func (f *Feed) Clock() clockwork.Clock { return f.clock }

// Now returns the absolute current time.
func (f *Feed) Now() time.Time { return f.clock.Now() }

// Read returns the current time in loc.
func (f *Feed) Read(loc *time.Location) Reading {
	return ReadingAt(f.clock.Now(), loc)
}

// SetVisible switches the cadence. Subscribers and tick chains pick up the
// change immediately. It reports whether visibility actually changed.
func (f *Feed) SetVisible(visible bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.visible == visible {
		return false
	}
	f.visible = visible
	f.gen++
	close(f.changed)
	f.changed = make(chan struct{})
	return true
}

// Visible reports whether the feed runs at frame cadence.
func (f *Feed) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

// Interval returns the current tick cadence.
func (f *Feed) Interval() time.Duration {
	interval, _, _ := f.state()
	return interval
}

func (f *Feed) state() (time.Duration, uint64, <-chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.visible {
		return FrameInterval, f.gen, f.changed
	}
	return HiddenInterval, f.gen, f.changed
}

// Tick returns a command that sends a TickMsg after the current interval.
func (f *Feed) Tick() tea.Cmd {
	interval, gen, _ := f.state()
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Time: f.clock.Now(), Gen: gen}
	})
}

// Current reports whether msg belongs to the active cadence. Ticks scheduled
// before a visibility change are stale and should not be rescheduled.
func (f *Feed) Current(msg TickMsg) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return msg.Gen == f.gen
}

// Subscribe streams readings for loc until ctx is done, then closes the
// channel. The first reading is sent immediately. Readings are dropped, not
// queued, when the receiver falls behind.
func (f *Feed) Subscribe(ctx context.Context, loc *time.Location) <-chan Reading {
	out := make(chan Reading, 1)

	go func() {
		defer close(out)

		send := func() {
			select {
			case out <- f.Read(loc):
			default:
			}
		}

		for {
			interval, _, changed := f.state()
			ticker := f.clock.NewTicker(interval)
			send()

			restart := false
			for !restart {
				select {
				case <-ctx.Done():
					ticker.Stop()
					return
				case <-changed:
					restart = true
				case <-ticker.Chan():
					send()
				}
			}
			ticker.Stop()
		}
	}()

	return out
}
