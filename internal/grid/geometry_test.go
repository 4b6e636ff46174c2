package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelsForHour(t *testing.T) {
	g := Default()

	assert.Equal(t, 0.0, g.PixelsForHour(8))
	assert.Equal(t, 60.0, g.PixelsForHour(9))
	assert.Equal(t, 75.0, g.PixelsForHour(9.25))
	assert.Equal(t, 720.0, g.PixelsForHour(20))
}

func TestSnapPixelDelta(t *testing.T) {
	g := Default()

	tests := []struct {
		name   string
		pixels float64
		want   float64
	}{
		{"zero", 0, 0},
		{"exact quarter", 15, 0.25},
		{"rounds up", 8, 0.25},
		{"rounds to zero", 7, 0},
		{"full hour", 60, 1},
		{"negative", -12, -0.25},
		{"negative hour", -61, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, g.SnapPixelDelta(tt.pixels), 1e-9)
		})
	}
}

func TestSnapDelta_QuarterHourMultiples(t *testing.T) {
	g := Default()

	for px := -720.0; px <= 720.0; px += 1.0 {
		got := g.SnapPixelDelta(px)
		assert.InDelta(t, 0, math.Remainder(got, g.SnapHours()), 1e-9,
			"snapped delta %v for %vpx is not a quarter-hour multiple", got, px)
	}
}

func TestClampStart(t *testing.T) {
	g := Default()

	assert.Equal(t, 8.0, g.ClampStart(5, 1), "below window start")
	assert.Equal(t, 19.0, g.ClampStart(22, 1), "beyond window end")
	assert.Equal(t, 18.0, g.ClampStart(19, 2), "duration pushes the cap down")
	assert.Equal(t, 9.25, g.ClampStart(9.25, 1), "in-window start unchanged")
}

func TestClampDuration(t *testing.T) {
	g := Default()

	assert.Equal(t, 0.25, g.ClampDuration(9, 0.1), "below minimum")
	assert.Equal(t, 0.25, g.ClampDuration(9, -2), "negative")
	assert.Equal(t, 2.0, g.ClampDuration(18, 5), "capped at window end")
	assert.Equal(t, 1.5, g.ClampDuration(9, 1.5), "valid duration unchanged")
}

func TestSlotsPerHour(t *testing.T) {
	assert.Equal(t, 4, Default().SlotsPerHour())
	assert.Equal(t, 2, Geometry{SnapMinutes: 30}.SlotsPerHour())
}

func TestHours(t *testing.T) {
	g := Default()

	hours := g.Hours()
	assert.Len(t, hours, 13)
	assert.Equal(t, 8, hours[0])
	assert.Equal(t, 20, hours[12])
}

func TestClock(t *testing.T) {
	tests := []struct {
		hour float64
		want string
	}{
		{9.25, "09:15"},
		{8, "08:00"},
		{13.5, "13:30"},
		{19.75, "19:45"},
		{20, "20:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clock(tt.hour))
	}
}
