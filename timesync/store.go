// Package timesync keeps the single authoritative instant shared by the two
// clock panels and reconciles edits coming from either side.
package timesync

import (
	"errors"
	"fmt"
	"time"

	"github.com/philtim/whenisthat/clock"
)

// ErrUnknownZone is returned when a timezone identifier cannot be resolved.
var ErrUnknownZone = errors.New("unknown timezone")

// Mode selects what drives the panels.
type Mode int

const (
	// Live panels follow the current time and cannot be edited.
	Live Mode = iota
	// Custom panels project the stored instant and write edits back to it.
	Custom
)

func (m Mode) String() string {
	if m == Custom {
		return "custom"
	}
	return "live"
}

// Panel identifies one side of the comparison.
type Panel int

const (
	// Local is "your time", the anchor of the stored instant.
	Local Panel = iota
	// Comparison is "their time", always a reinterpretation of the anchor.
	Comparison
)

func (p Panel) String() string {
	if p == Comparison {
		return "comparison"
	}
	return "local"
}

// LoadZone resolves an IANA timezone identifier. Empty and "Local" are
// rejected: the host's implicit zone must be resolved to a name first.
func LoadZone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, name, err)
	}
	return loc, nil
}

// Store is the Instant Store. In Custom mode the stored instant, expressed
// in the local zone, is the only source of truth for both panels.
//
// A Store is not safe for concurrent use; it is driven from the UI loop.
type Store struct {
	mode       Mode
	local      *time.Location
	comparison *time.Location
	instant    time.Time
}

// New creates a Store in Live mode with the instant seeded from now.
func New(now time.Time, local, comparison *time.Location) *Store {
	return &Store{
		mode:       Live,
		local:      local,
		comparison: comparison,
		instant:    snapshot(now, local),
	}
}

// snapshot expresses now in loc with seconds and sub-seconds zeroed.
func snapshot(now time.Time, loc *time.Location) time.Time {
	return WallClockOf(now.In(loc)).Truncated().In(loc)
}

// Mode returns the current mode.
func (s *Store) Mode() Mode { return s.mode }

// Instant returns the stored instant in the local zone. It is only
// authoritative in Custom mode.
func (s *Store) Instant() time.Time { return s.instant }

// LocalZone returns the local panel's zone.
func (s *Store) LocalZone() *time.Location { return s.local }

// ComparisonZone returns the comparison panel's zone.
func (s *Store) ComparisonZone() *time.Location { return s.comparison }

// Zone returns the zone of the given panel.
func (s *Store) Zone(p Panel) *time.Location {
	if p == Comparison {
		return s.comparison
	}
	return s.local
}

// Toggle alternates between Live and Custom.
func (s *Store) Toggle(now time.Time) {
	if s.mode == Live {
		s.SetMode(Custom, now)
		return
	}
	s.SetMode(Live, now)
}

// SetMode switches mode. Entering Custom snapshots now in the local zone;
// a value edited in an earlier Custom session is not restored.
func (s *Store) SetMode(mode Mode, now time.Time) {
	if mode == s.mode {
		return
	}
	if mode == Custom {
		s.instant = snapshot(now, s.local)
	}
	s.mode = mode
}

// SetLocalZone resolves name and applies SetLocalLocation.
func (s *Store) SetLocalZone(name string) error {
	loc, err := LoadZone(name)
	if err != nil {
		return err
	}
	s.SetLocalLocation(loc)
	return nil
}

// SetLocalLocation changes the local zone. In Custom mode the stored value
// keeps its wall-clock fields and moves to the new zone: 3 PM stays 3 PM.
func (s *Store) SetLocalLocation(loc *time.Location) {
	if s.mode == Custom {
		s.instant = ReanchorPreservingWallClock(s.instant, loc)
	}
	s.local = loc
}

// SetComparisonZone resolves name and applies SetComparisonLocation.
func (s *Store) SetComparisonZone(name string) error {
	loc, err := LoadZone(name)
	if err != nil {
		return err
	}
	s.SetComparisonLocation(loc)
	return nil
}

// SetComparisonLocation changes the comparison zone. The stored instant is
// never touched.
func (s *Store) SetComparisonLocation(loc *time.Location) {
	s.comparison = loc
}

// ApplyEdit stores wall-clock fields edited on a panel. Local edits are
// taken verbatim in the local zone; comparison edits are interpreted in the
// comparison zone and converted to the local zone through the absolute
// instant. Callers only invoke it in Custom mode.
func (s *Store) ApplyEdit(p Panel, w WallClock) {
	if p == Comparison {
		s.instant = ReanchorPreservingInstant(w.In(s.comparison), s.local)
		return
	}
	s.instant = ReanchorPreservingWallClock(w.In(s.local), s.local)
}

// Projection is what one panel displays.
type Projection struct {
	Panel       Panel
	Time        time.Time
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Angles      clock.Angles
	// Live is set when the projection follows the current time.
	Live bool
	// Editable is set when edits on the panel are accepted.
	Editable bool
}

// WallClock returns the projection's wall-clock fields.
func (p Projection) WallClock() WallClock {
	return WallClockOf(p.Time)
}

// Projection returns what panel p shows. In Live mode it is now in the
// panel zone; in Custom mode the stored instant in the panel zone with
// seconds frozen at zero.
func (s *Store) Projection(p Panel, now time.Time) Projection {
	loc := s.Zone(p)
	if s.mode == Live {
		t := now.In(loc)
		ms := t.Nanosecond() / int(time.Millisecond)
		return Projection{
			Panel:       p,
			Time:        t,
			Hour:        t.Hour(),
			Minute:      t.Minute(),
			Second:      t.Second(),
			Millisecond: ms,
			Angles:      clock.HandAngles(t.Hour(), t.Minute(), t.Second(), ms),
			Live:        true,
		}
	}

	t := ReanchorPreservingInstant(s.instant, loc)
	return Projection{
		Panel:    p,
		Time:     t,
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Angles:   clock.HandAngles(t.Hour(), t.Minute(), 0, 0),
		Editable: true,
	}
}
