package clock

import "math"

const (
	// MinuteCaptureRadius is the angular distance (degrees) within which a
	// press grabs the minute hand.
	MinuteCaptureRadius = 20.0
	// HourCaptureRadius is the angular distance (degrees) within which a
	// press grabs the hour hand when the minute hand was not grabbed.
	HourCaptureRadius = 25.0
)

// Angles holds the rotation of each hand in degrees, clockwise from 12.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// HourAngle returns the hour hand rotation. The hand creeps between hour
// marks as minutes pass.
func HourAngle(hour, minute int) float64 {
	return float64(hour%12)*30 + float64(minute)*0.5
}

// MinuteAngle returns the minute hand rotation.
func MinuteAngle(minute, second int) float64 {
	return float64(minute)*6 + float64(second)*0.1
}

// SecondAngle returns the second hand rotation with smooth sub-second motion.
func SecondAngle(second, millisecond int) float64 {
	return float64(second)*6 + (float64(millisecond)/1000)*6
}

// HandAngles computes all three hand rotations for the given fields.
func HandAngles(hour, minute, second, millisecond int) Angles {
	return Angles{
		Hour:   HourAngle(hour, minute),
		Minute: MinuteAngle(minute, second),
		Second: SecondAngle(second, millisecond),
	}
}

// NormalizeAngle maps any angle into [0, 360).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngularDistance returns the shorter distance between two angles, in [0, 180].
func AngularDistance(a, b float64) float64 {
	diff := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	return math.Min(diff, 360-diff)
}

// PointerAngle converts a pointer offset from the face center into a clock
// angle in [0, 360), with 0 at twelve o'clock and y growing downwards.
// Every offset resolves to an angle, including points outside the face.
func PointerAngle(dx, dy float64) float64 {
	angle := math.Atan2(dy, dx)*180/math.Pi + 90
	return NormalizeAngle(angle)
}

// MinuteFromAngle returns the minute the minute hand points at.
func MinuteFromAngle(angle float64) int {
	return int(math.Round(NormalizeAngle(angle)/6)) % 60
}

// HourFromAngle returns the hour the hour hand points at, keeping the AM/PM
// half of currentHour. A 12-hour face cannot tell the halves apart.
func HourFromAngle(angle float64, currentHour int) int {
	hour := int(math.Round(NormalizeAngle(angle)/30)) % 12
	if currentHour >= 12 {
		hour += 12
	}
	return hour
}

// Rollover reports how the hour must change when the minute hand moves from
// prev to next during a drag: +1 when it crosses twelve going forward, -1
// going backward, 0 otherwise. Only one crossing per sample is detected.
func Rollover(prev, next int) int {
	switch {
	case prev > 45 && next < 15:
		return 1
	case prev < 15 && next > 45:
		return -1
	default:
		return 0
	}
}

// Point is an offset from the face center in face units.
type Point struct {
	X float64
	Y float64
}

// HandTip projects a hand of the given length at angle onto the face.
func HandTip(angle, length float64) Point {
	rad := (angle - 90) * math.Pi / 180
	return Point{X: math.Cos(rad) * length, Y: math.Sin(rad) * length}
}

// Marker is a tick on the clock face, from Inner to Outer.
type Marker struct {
	Index int
	Inner Point
	Outer Point
}

// HourMarkers returns the twelve hour ticks for a face of the given radius.
func HourMarkers(radius float64) []Marker {
	markers := make([]Marker, 0, 12)
	for i := 0; i < 12; i++ {
		angle := float64(i * 30)
		markers = append(markers, Marker{
			Index: i,
			Inner: HandTip(angle, radius*0.8),
			Outer: HandTip(angle, radius),
		})
	}
	return markers
}

// MinuteMarkers returns the minute ticks, skipping positions covered by an
// hour tick.
func MinuteMarkers(radius float64) []Marker {
	markers := make([]Marker, 0, 48)
	for i := 0; i < 60; i++ {
		if i%5 == 0 {
			continue
		}
		angle := float64(i * 6)
		markers = append(markers, Marker{
			Index: i,
			Inner: HandTip(angle, radius*0.9),
			Outer: HandTip(angle, radius),
		})
	}
	return markers
}
