package pricing

import (
	"loan-pricing/internal/model"
)

// IsotonicCurve is a non-decreasing breakpoint fit exported from training.
// Between breakpoints the curve interpolates linearly; outside the fitted
// domain it clamps to the nearest endpoint rather than extrapolating the
// step function.
type IsotonicCurve struct {
	X []float64 `yaml:"x" json:"x"`
	Y []float64 `yaml:"y" json:"y"`
}

// Validate checks the breakpoint invariants the fit guarantees at train
// time: x strictly increasing, y non-decreasing, equal lengths.
func (c *IsotonicCurve) Validate() error {
	if len(c.X) != len(c.Y) {
		return model.ConfigErrorf("pricing.isotonic", "x and y must have equal length, got %d and %d", len(c.X), len(c.Y))
	}
	if len(c.X) < 2 {
		return model.ConfigErrorf("pricing.isotonic", "need at least 2 breakpoints, got %d", len(c.X))
	}
	for i := 1; i < len(c.X); i++ {
		if c.X[i] <= c.X[i-1] {
			return model.ConfigErrorf("pricing.isotonic", "x must be strictly increasing at index %d (%g <= %g)", i, c.X[i], c.X[i-1])
		}
		if c.Y[i] < c.Y[i-1] {
			return model.ConfigErrorf("pricing.isotonic", "y must be non-decreasing at index %d (%g < %g)", i, c.Y[i], c.Y[i-1])
		}
	}
	return nil
}

// Eval evaluates the curve at x, clamping to the boundary outside the
// fitted domain.
func (c *IsotonicCurve) Eval(x float64) float64 {
	n := len(c.X)
	if x <= c.X[0] {
		return c.Y[0]
	}
	if x >= c.X[n-1] {
		return c.Y[n-1]
	}
	// n is tiny (training grid); linear scan for the bracketing segment.
	i := 1
	for i < n && c.X[i] < x {
		i++
	}
	x0, x1 := c.X[i-1], c.X[i]
	y0, y1 := c.Y[i-1], c.Y[i]
	frac := (x - x0) / (x1 - x0)
	return y0 + frac*(y1-y0)
}
