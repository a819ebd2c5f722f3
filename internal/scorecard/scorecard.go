package scorecard

import (
	"math"
	"sort"

	"loan-pricing/internal/model"
)

// Params are the scorecard anchor parameters and clipping bounds.
// The transform maps PD -> log-odds -> score:
//
//	score = S0 + (PDO / ln 2) * ln(odds / O0), odds = (1-pd)/pd
//
// S0 is the anchor score at odds O0; PDO is points-to-double-odds.
type Params struct {
	S0  float64 `yaml:"s0" json:"s0"`
	O0  float64 `yaml:"o0" json:"o0"`
	PDO float64 `yaml:"pdo" json:"pdo"`

	// PD is clipped to [PDFloor, PDCeiling] before the log-odds math so
	// pd=0 / pd=1 never reach the transform.
	PDFloor   float64 `yaml:"pd_floor" json:"pd_floor"`
	PDCeiling float64 `yaml:"pd_ceiling" json:"pd_ceiling"`

	ScoreMin int `yaml:"score_min" json:"score_min"`
	ScoreMax int `yaml:"score_max" json:"score_max"`

	// RoundScore rounds the clipped score to nearest; otherwise it truncates.
	RoundScore bool `yaml:"round_score" json:"round_score"`
}

// BandCut is one band cutoff: scores >= Min fall into Band (unless a better
// band claims them first).
type BandCut struct {
	Band string `json:"band"`
	Min  int    `json:"min"`
}

// Scorecard converts probabilities of default into scores and bands.
// Immutable after construction; safe for concurrent use.
type Scorecard struct {
	params Params
	bands  []BandCut // sorted best (highest Min) first
	k      float64   // PDO / ln 2
}

// New validates the parameters and band cutoffs and builds a Scorecard.
// Cutoffs must be strictly descending from best to worst band; scores below
// every cutoff fall into the worst band.
func New(params Params, cuts map[string]int) (*Scorecard, error) {
	if params.O0 <= 0 {
		return nil, model.ConfigErrorf("scorecard.o0", "anchor odds must be > 0, got %g", params.O0)
	}
	if params.PDO <= 0 {
		return nil, model.ConfigErrorf("scorecard.pdo", "points-to-double-odds must be > 0, got %g", params.PDO)
	}
	if params.PDFloor <= 0 || params.PDCeiling >= 1 || params.PDFloor >= params.PDCeiling {
		return nil, model.ConfigErrorf("limits", "pd bounds must satisfy 0 < pd_floor < pd_ceiling < 1, got [%g, %g]",
			params.PDFloor, params.PDCeiling)
	}
	if params.ScoreMin >= params.ScoreMax {
		return nil, model.ConfigErrorf("limits", "score_min must be < score_max, got [%d, %d]",
			params.ScoreMin, params.ScoreMax)
	}
	if len(cuts) == 0 {
		return nil, model.ConfigErrorf("bands", "at least one band cutoff is required")
	}

	bands := make([]BandCut, 0, len(cuts))
	for band, min := range cuts {
		bands = append(bands, BandCut{Band: band, Min: min})
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i].Min > bands[j].Min })
	for i := 1; i < len(bands); i++ {
		if bands[i].Min == bands[i-1].Min {
			return nil, model.ConfigErrorf("bands", "cutoffs for %q and %q are both %d; cutoffs must be strictly descending",
				bands[i-1].Band, bands[i].Band, bands[i].Min)
		}
	}

	return &Scorecard{
		params: params,
		bands:  bands,
		k:      params.PDO / math.Ln2,
	}, nil
}

// Params returns the anchor parameters, surfaced on quotes for auditability.
func (s *Scorecard) Params() Params { return s.params }

// Bands returns the cutoffs sorted best-first.
func (s *Scorecard) Bands() []BandCut {
	out := make([]BandCut, len(s.bands))
	copy(out, s.bands)
	return out
}

// PDToOdds converts a probability to odds of non-default.
func PDToOdds(pd float64) float64 { return (1 - pd) / pd }

// OddsToPD is the inverse of PDToOdds.
func OddsToPD(odds float64) float64 { return 1 / (1 + odds) }

// ClipPD clamps pd into [PDFloor, PDCeiling].
func (s *Scorecard) ClipPD(pd float64) float64 {
	return math.Max(s.params.PDFloor, math.Min(s.params.PDCeiling, pd))
}

// ScoreFromPD maps a probability of default to a clipped integer score.
// Lower PD means higher score. Non-finite pd is rejected.
func (s *Scorecard) ScoreFromPD(pd float64) (int, error) {
	if math.IsNaN(pd) || math.IsInf(pd, 0) {
		return 0, model.InvalidInput("pd", "must be finite, got %v", pd)
	}
	clipped := s.ClipPD(pd)
	odds := PDToOdds(clipped)
	raw := s.params.S0 + s.k*math.Log(odds/s.params.O0)
	raw = math.Max(float64(s.params.ScoreMin), math.Min(float64(s.params.ScoreMax), raw))
	if s.params.RoundScore {
		return int(math.Round(raw)), nil
	}
	return int(raw), nil
}

// PDFromScore inverts the transform back to a clipped PD.
func (s *Scorecard) PDFromScore(score int) float64 {
	c := score
	if c < s.params.ScoreMin {
		c = s.params.ScoreMin
	}
	if c > s.params.ScoreMax {
		c = s.params.ScoreMax
	}
	odds := s.params.O0 * math.Exp((float64(c)-s.params.S0)/s.k)
	return s.ClipPD(OddsToPD(odds))
}

// BandOf assigns a band by scanning cutoffs best-first; scores below every
// cutoff get the worst band.
func (s *Scorecard) BandOf(score int) string {
	for _, b := range s.bands {
		if score >= b.Min {
			return b.Band
		}
	}
	return s.bands[len(s.bands)-1].Band
}

// ScoreAndBand runs the full transform for one probability.
func (s *Scorecard) ScoreAndBand(pd float64) (model.RiskAssessment, error) {
	score, err := s.ScoreFromPD(pd)
	if err != nil {
		return model.RiskAssessment{}, err
	}
	return model.RiskAssessment{PD: pd, Score: score, Band: s.BandOf(score)}, nil
}
