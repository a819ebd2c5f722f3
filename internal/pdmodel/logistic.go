// Package pdmodel provides a logistic-regression stand-in for the external
// default classifier. The real model is trained elsewhere; this evaluates
// exported weights so the pricing core can be exercised end to end.
package pdmodel

import (
	"math"
	"sort"
	"strings"

	"loan-pricing/internal/model"
)

// FeatureWeight is one term of the linear predictor.
type FeatureWeight struct {
	Name   string  `yaml:"name" json:"name"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// Config is the exported model: intercept plus ordered feature weights.
type Config struct {
	Intercept float64         `yaml:"intercept" json:"intercept"`
	Features  []FeatureWeight `yaml:"features" json:"features"`
}

// Logistic scores a feature map into a probability of default.
// Immutable after construction; safe for concurrent use.
type Logistic struct {
	cfg Config
}

// New validates the exported weights.
func New(cfg Config) (*Logistic, error) {
	if len(cfg.Features) == 0 {
		return nil, model.ConfigErrorf("model.features", "at least one feature weight is required")
	}
	seen := map[string]bool{}
	for i, f := range cfg.Features {
		if f.Name == "" {
			return nil, model.ConfigErrorf("model.features", "feature %d has no name", i)
		}
		if seen[f.Name] {
			return nil, model.ConfigErrorf("model.features", "feature %q listed twice", f.Name)
		}
		seen[f.Name] = true
		if math.IsNaN(f.Weight) || math.IsInf(f.Weight, 0) {
			return nil, model.ConfigErrorf("model.features", "weight for %q is not finite", f.Name)
		}
	}
	return &Logistic{cfg: cfg}, nil
}

// FeatureNames returns the expected feature names in model order.
func (m *Logistic) FeatureNames() []string {
	out := make([]string, len(m.cfg.Features))
	for i, f := range m.cfg.Features {
		out[i] = f.Name
	}
	return out
}

// PredictPD evaluates the model on a feature map. Every configured feature
// must be present and finite; missing ones are reported by name.
func (m *Logistic) PredictPD(features map[string]float64) (float64, error) {
	var missing []string
	z := m.cfg.Intercept
	for _, f := range m.cfg.Features {
		v, ok := features[f.Name]
		if !ok {
			missing = append(missing, f.Name)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, model.InvalidInput("features", "feature %q is not finite", f.Name)
		}
		z += f.Weight * v
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return 0, model.InvalidInput("features", "missing features: %s", strings.Join(missing, ", "))
	}
	return sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
