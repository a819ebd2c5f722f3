// Package registry owns the process-wide configuration bundle. Everything is
// loaded once at startup; reloads build a complete new bundle and swap it in
// atomically so in-flight requests observe one consistent version throughout.
package registry

import (
	"sync/atomic"

	"loan-pricing/internal/config"
	"loan-pricing/internal/pdmodel"
	"loan-pricing/internal/pricing"
	"loan-pricing/internal/quote"
	"loan-pricing/internal/scorecard"
)

// Bundle is one immutable configuration version.
type Bundle struct {
	Config    *config.Config
	Scorecard *scorecard.Scorecard
	Pricing   *pricing.Wrapper
	Engine    *quote.Engine
	// Model is nil when no PD stub is configured.
	Model *pdmodel.Logistic
}

// Registry holds the current bundle behind an atomic pointer.
type Registry struct {
	path    string
	current atomic.Pointer[Bundle]
}

// New creates a registry for a config path without loading it.
func New(path string) *Registry {
	return &Registry{path: path}
}

// Path returns the config path this registry loads from.
func (r *Registry) Path() string { return r.path }

// Load builds a fresh bundle from the config file and swaps it in. On error
// the previous bundle (if any) keeps serving.
func (r *Registry) Load() error {
	cfg, err := config.Load(r.path)
	if err != nil {
		return err
	}
	b, err := Build(cfg)
	if err != nil {
		return err
	}
	r.current.Store(b)
	return nil
}

// Current returns the active bundle; nil before the first successful Load.
func (r *Registry) Current() *Bundle {
	return r.current.Load()
}

// Build assembles a bundle from an already-validated config.
func Build(cfg *config.Config) (*Bundle, error) {
	sc, err := scorecard.New(cfg.ScorecardParams(), cfg.BandCuts())
	if err != nil {
		return nil, err
	}
	pw, err := pricing.NewWrapper(cfg.Pricing.Artifact)
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		Config:    cfg,
		Scorecard: sc,
		Pricing:   pw,
		Engine:    quote.New(sc, pw, cfg.UnitEcon),
	}

	if cfg.Model != nil {
		mcfg := pdmodel.Config{Intercept: cfg.Model.Intercept}
		for _, f := range cfg.Model.Features {
			mcfg.Features = append(mcfg.Features, pdmodel.FeatureWeight{Name: f.Name, Weight: f.Weight})
		}
		m, err := pdmodel.New(mcfg)
		if err != nil {
			return nil, err
		}
		b.Model = m
	}

	return b, nil
}
