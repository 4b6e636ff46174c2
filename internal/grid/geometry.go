// Package grid holds the time geometry of the planner: pure
// conversions between vertical pixel offsets and fractional hours of
// day, with snapping and bounds clamping. All functions are
// side-effect free; inputs are assumed well-formed.
package grid

import (
	"fmt"
	"math"
)

// Geometry describes one planner grid: its schedulable window, the
// vertical scale, and the snap granularity for interactive edits.
type Geometry struct {
	StartHour     float64
	EndHour       float64
	PixelsPerHour float64
	SnapMinutes   int
}

// Default returns the observed production configuration: 08:00-20:00,
// 60px per hour, 15-minute snapping.
func Default() Geometry {
	return Geometry{
		StartHour:     8,
		EndHour:       20,
		PixelsPerHour: 60,
		SnapMinutes:   15,
	}
}

// SnapHours returns the snap granularity in fractional hours.
func (g Geometry) SnapHours() float64 {
	return float64(g.SnapMinutes) / 60
}

// SlotsPerHour returns how many snap slots fit in one hour.
func (g Geometry) SlotsPerHour() int {
	return 60 / g.SnapMinutes
}

// PixelsForHour returns the vertical offset of an hour-of-day from the
// top of the grid.
func (g Geometry) PixelsForHour(hour float64) float64 {
	return (hour - g.StartHour) * g.PixelsPerHour
}

// HoursForPixels converts a raw pixel delta into an hour delta,
// without snapping.
func (g Geometry) HoursForPixels(deltaPixels float64) float64 {
	return deltaPixels / g.PixelsPerHour
}

// SnapDelta rounds an hour delta to the nearest snap boundary.
func (g Geometry) SnapDelta(deltaHours float64) float64 {
	step := g.SnapHours()
	return math.Round(deltaHours/step) * step
}

// SnapPixelDelta converts a pixel delta into a snapped hour delta.
// Matches the interactive path: the pixel delta is rounded to the
// nearest snap-sized pixel step before conversion.
func (g Geometry) SnapPixelDelta(deltaPixels float64) float64 {
	snapPixels := g.PixelsPerHour * g.SnapHours()
	snapped := math.Round(deltaPixels/snapPixels) * snapPixels
	return g.HoursForPixels(snapped)
}

// ClampStart clamps a start time so a task of the given duration stays
// inside the schedulable window.
func (g Geometry) ClampStart(start, duration float64) float64 {
	hi := g.EndHour - duration
	if start > hi {
		start = hi
	}
	if start < g.StartHour {
		start = g.StartHour
	}
	return start
}

// ClampDuration clamps a duration to [one snap step, window end].
// The upper bound holds on live resizes as well as commits.
func (g Geometry) ClampDuration(start, duration float64) float64 {
	if min := g.SnapHours(); duration < min {
		duration = min
	}
	if max := g.EndHour - start; duration > max {
		duration = max
	}
	return duration
}

// Hours lists every whole hour label of the grid, start through end
// inclusive.
func (g Geometry) Hours() []int {
	var hours []int
	for h := int(g.StartHour); h <= int(g.EndHour); h++ {
		hours = append(hours, h)
	}
	return hours
}

// Clock renders a fractional hour as zero-padded 24h "HH:MM".
func Clock(hour float64) string {
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
