package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	clk := NewFake(start)

	assert.Equal(t, start, clk.Now())

	clk.Advance(48 * time.Hour)
	assert.Equal(t, start.AddDate(0, 0, 2), clk.Now())

	reset := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	clk.Set(reset)
	assert.Equal(t, reset, clk.Now())
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
