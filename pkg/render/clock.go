package render

import (
	"fmt"
	"strings"
)

// Precision selects the accumulator used by the frame clock.
type Precision int

const (
	// DoublePrecision accumulates in float64 and only narrows when the
	// value is published.
	DoublePrecision Precision = iota

	// SinglePrecision accumulates in float32. Long sessions lose
	// resolution once elapsed grows large relative to the step.
	SinglePrecision
)

func (p Precision) String() string {
	switch p {
	case SinglePrecision:
		return "single"
	case DoublePrecision:
		return "double"
	}
	return "unknown"
}

// ParsePrecision parses "single" or "double".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "float32":
		return SinglePrecision, nil
	case "double", "float64", "":
		return DoublePrecision, nil
	}
	return DoublePrecision, fmt.Errorf("unknown clock precision %q", s)
}

// Tick returns elapsed advanced by step.
func Tick(elapsed, step float32) float32 {
	return elapsed + step
}

// Clock is a frame counter scaled by a constant step. It does not follow
// wall-clock time.
type Clock struct {
	precision Precision
	step      float64
	elapsed   float64
	ticks     uint64
}

// NewClock creates a clock at zero advancing by step on every Tick.
func NewClock(step float64, precision Precision) *Clock {
	return &Clock{
		precision: precision,
		step:      step,
	}
}

// Tick advances the clock by one step and returns the new value.
func (c *Clock) Tick() float32 {
	switch c.precision {
	case SinglePrecision:
		c.elapsed = float64(Tick(float32(c.elapsed), float32(c.step)))
	default:
		c.elapsed += c.step
	}
	c.ticks++
	return c.Elapsed()
}

// Elapsed returns the current clock value as published to the shader.
func (c *Clock) Elapsed() float32 {
	return float32(c.elapsed)
}

// Ticks returns the number of times the clock was advanced.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Precision returns the accumulator the clock was created with.
func (c *Clock) Precision() Precision {
	return c.precision
}
