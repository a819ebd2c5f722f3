package config

import (
	"errors"
	"os"
	"path/filepath"

	"loan-pricing/internal/model"
	"loan-pricing/internal/pricing"
	"loan-pricing/internal/scorecard"
	"loan-pricing/internal/unitecon"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). One file describes the
// whole pricing core: scorecard anchors, band cutoffs, the fitted pricing
// artifact (inline or via artifact_file) and unit-economics policy.
type Config struct {
	Scorecard ScorecardSection `yaml:"scorecard"`
	Limits    LimitsSection    `yaml:"limits"`
	Bands     map[string]Band  `yaml:"bands"`
	Pricing   PricingSection   `yaml:"pricing"`
	UnitEcon  unitecon.Config  `yaml:"unit_economics"`
	// Model is the optional PD classifier stub; without it the /score
	// endpoint is disabled and callers must supply pd directly.
	Model *ModelSection `yaml:"model"`
}

type ScorecardSection struct {
	S0  float64 `yaml:"s0"`
	O0  float64 `yaml:"o0"`
	PDO float64 `yaml:"pdo"`
}

type LimitsSection struct {
	PDFloor    float64 `yaml:"pd_floor"`
	PDCeiling  float64 `yaml:"pd_ceiling"`
	ScoreMin   int     `yaml:"score_min"`
	ScoreMax   int     `yaml:"score_max"`
	RoundScore bool    `yaml:"round_score"`
}

type Band struct {
	Min int `yaml:"min"`
}

type PricingSection struct {
	// Optional: load the fitted artifact from a separate YAML (exported by
	// the training job). Resolved relative to the config file directory.
	ArtifactFile string           `yaml:"artifact_file"`
	Artifact     pricing.Artifact `yaml:"artifact"`
	// Caps here are a fallback when the artifact carries none.
	Caps model.RateCaps `yaml:"caps"`
}

type ModelSection struct {
	Intercept float64     `yaml:"intercept"`
	Features  []pdFeature `yaml:"features"`
}

type pdFeature struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// Defaults mirror the limits the scoring config shipped with.
const (
	defaultPDFloor   = 0.002
	defaultPDCeiling = 0.60
	defaultScoreMax  = 1000
)

// Load reads, merges and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	// If artifact_file is set, it is the source of truth for the fit.
	if c.Pricing.ArtifactFile != "" {
		artifactPath := c.Pricing.ArtifactFile
		if !filepath.IsAbs(artifactPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), artifactPath)
			if _, err := os.Stat(cand); err == nil {
				artifactPath = cand
			}
		}
		loaded, err := loadArtifactFile(artifactPath)
		if err != nil {
			return nil, err
		}
		c.Pricing.Artifact = loaded
	}

	// Caps fallback: the artifact's own caps win; the pricing-level caps
	// fill in when the artifact carries none.
	if c.Pricing.Artifact.Caps == (model.RateCaps{}) {
		c.Pricing.Artifact.Caps = c.Pricing.Caps
	}

	applyDefaults(&c)
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Limits.PDFloor == 0 {
		c.Limits.PDFloor = defaultPDFloor
	}
	if c.Limits.PDCeiling == 0 {
		c.Limits.PDCeiling = defaultPDCeiling
	}
	if c.Limits.ScoreMax == 0 {
		c.Limits.ScoreMax = defaultScoreMax
	}
}

// Validate checks internal consistency by constructing the core components;
// any failure is a ConfigError and must abort startup.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := scorecard.New(c.ScorecardParams(), c.BandCuts()); err != nil {
		return err
	}
	if _, err := pricing.NewWrapper(c.Pricing.Artifact); err != nil {
		return err
	}
	if err := c.UnitEcon.Validate(); err != nil {
		return err
	}
	return nil
}

// ScorecardParams assembles the scorecard parameters from their sections.
func (c *Config) ScorecardParams() scorecard.Params {
	return scorecard.Params{
		S0:         c.Scorecard.S0,
		O0:         c.Scorecard.O0,
		PDO:        c.Scorecard.PDO,
		PDFloor:    c.Limits.PDFloor,
		PDCeiling:  c.Limits.PDCeiling,
		ScoreMin:   c.Limits.ScoreMin,
		ScoreMax:   c.Limits.ScoreMax,
		RoundScore: c.Limits.RoundScore,
	}
}

// BandCuts flattens the band section to label -> minimum score.
func (c *Config) BandCuts() map[string]int {
	out := make(map[string]int, len(c.Bands))
	for band, cut := range c.Bands {
		out[band] = cut.Min
	}
	return out
}

type artifactFileWrapper struct {
	Artifact pricing.Artifact `yaml:"artifact"`
}

func loadArtifactFile(path string) (pricing.Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return pricing.Artifact{}, err
	}
	var w artifactFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return pricing.Artifact{}, err
	}
	return w.Artifact, nil
}
