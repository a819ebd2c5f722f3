package pricing

import (
	"math"

	"loan-pricing/internal/model"
)

// Mode identifies which pricing path produced a rate.
type Mode string

const (
	ModeLinear         Mode = "linear"
	ModeLinearIsotonic Mode = "linear+isotonic"
)

// Artifact is the on-disk shape of a fitted pricing curve: a degree-1 or
// degree-2 polynomial in PD, an optional isotonic correction, and rate caps.
type Artifact struct {
	Intercept    float64        `yaml:"intercept" json:"intercept"`
	Coefficients []float64      `yaml:"coefficients" json:"coefficients"`
	Isotonic     *IsotonicCurve `yaml:"isotonic,omitempty" json:"isotonic,omitempty"`
	Caps         model.RateCaps `yaml:"caps" json:"caps"`
}

// Info is the audit metadata returned with every suggested rate.
type Info struct {
	Mode       Mode           `json:"mode"`
	PolyDegree int            `json:"poly_degree"`
	Caps       model.RateCaps `json:"caps"`
}

// Wrapper evaluates a fitted pricing artifact. The variant (degree, isotonic
// presence) is resolved once here, not re-inspected per request. Immutable
// after construction; safe for concurrent use.
type Wrapper struct {
	intercept float64
	coefs     []float64
	iso       *IsotonicCurve
	caps      model.RateCaps
	mode      Mode
}

// NewWrapper validates the artifact and resolves its variant.
func NewWrapper(a Artifact) (*Wrapper, error) {
	deg := len(a.Coefficients)
	if deg < 1 || deg > 2 {
		return nil, model.ConfigErrorf("pricing.coefficients", "expected 1 or 2 coefficients (degree), got %d", deg)
	}
	for i, c := range a.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, model.ConfigErrorf("pricing.coefficients", "coefficient %d is not finite", i)
		}
	}
	if a.Caps.MinRateMonthly > a.Caps.MaxRateMonthly {
		return nil, model.ConfigErrorf("pricing.caps", "min_rate_monthly %g > max_rate_monthly %g",
			a.Caps.MinRateMonthly, a.Caps.MaxRateMonthly)
	}
	mode := ModeLinear
	if a.Isotonic != nil {
		if err := a.Isotonic.Validate(); err != nil {
			return nil, err
		}
		mode = ModeLinearIsotonic
	}
	coefs := make([]float64, deg)
	copy(coefs, a.Coefficients)
	return &Wrapper{
		intercept: a.Intercept,
		coefs:     coefs,
		iso:       a.Isotonic,
		caps:      a.Caps,
		mode:      mode,
	}, nil
}

// PolyDegree is 1 (linear) or 2 (quadratic), read from the stored
// coefficient shape.
func (w *Wrapper) PolyDegree() int { return len(w.coefs) }

// Caps returns the policy rate bounds.
func (w *Wrapper) Caps() model.RateCaps { return w.caps }

// Info returns the audit metadata for this artifact.
func (w *Wrapper) Info() Info {
	return Info{Mode: w.mode, PolyDegree: w.PolyDegree(), Caps: w.caps}
}

// SuggestRate maps a PD to a monthly rate: polynomial predictor, isotonic
// override when present, then caps. The polynomial extrapolates outside the
// training range; the isotonic curve clamps to its boundary instead.
func (w *Wrapper) SuggestRate(pd float64) (float64, error) {
	if math.IsNaN(pd) || math.IsInf(pd, 0) {
		return 0, model.InvalidInput("pd", "must be finite, got %v", pd)
	}

	rate := w.intercept + w.coefs[0]*pd
	if len(w.coefs) == 2 {
		rate += w.coefs[1] * pd * pd
	}
	if w.iso != nil {
		// The correction replaces the regression output wholesale; it was
		// fitted on the regression's own predictions and is non-decreasing
		// in PD even where the raw polynomial is not.
		rate = w.iso.Eval(pd)
	}
	return w.caps.Clip(rate), nil
}
