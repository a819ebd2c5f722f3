package pdmodel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-pricing/internal/model"
	"loan-pricing/internal/pdmodel"
)

func testModel(t *testing.T) *pdmodel.Logistic {
	t.Helper()
	m, err := pdmodel.New(pdmodel.Config{
		Intercept: -3.2,
		Features: []pdmodel.FeatureWeight{
			{Name: "utilization", Weight: 1.9},
			{Name: "debt_to_income", Weight: 1.4},
			{Name: "delinquencies_12m", Weight: 0.8},
		},
	})
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	t.Run("rejects empty feature set", func(t *testing.T) {
		_, err := pdmodel.New(pdmodel.Config{Intercept: -1})
		require.Error(t, err)
		var cfgErr *model.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("rejects duplicate feature", func(t *testing.T) {
		_, err := pdmodel.New(pdmodel.Config{Features: []pdmodel.FeatureWeight{
			{Name: "utilization", Weight: 1.0},
			{Name: "utilization", Weight: 2.0},
		}})
		require.Error(t, err)
	})

	t.Run("rejects unnamed feature", func(t *testing.T) {
		_, err := pdmodel.New(pdmodel.Config{Features: []pdmodel.FeatureWeight{{Weight: 1.0}}})
		require.Error(t, err)
	})

	t.Run("rejects non-finite weight", func(t *testing.T) {
		_, err := pdmodel.New(pdmodel.Config{Features: []pdmodel.FeatureWeight{
			{Name: "utilization", Weight: math.Inf(1)},
		}})
		require.Error(t, err)
	})
}

func TestLogistic_PredictPD(t *testing.T) {
	m := testModel(t)

	t.Run("zero predictor gives one half", func(t *testing.T) {
		flat, err := pdmodel.New(pdmodel.Config{
			Intercept: 0,
			Features:  []pdmodel.FeatureWeight{{Name: "x", Weight: 1.0}},
		})
		require.NoError(t, err)
		pd, err := flat.PredictPD(map[string]float64{"x": 0})
		require.NoError(t, err)
		assert.InDelta(t, 0.5, pd, 1e-12)
	})

	t.Run("probabilities stay in the open unit interval", func(t *testing.T) {
		for _, util := range []float64{0, 0.5, 1.0, 5.0} {
			pd, err := m.PredictPD(map[string]float64{
				"utilization":       util,
				"debt_to_income":    0.3,
				"delinquencies_12m": 1,
			})
			require.NoError(t, err)
			assert.Greater(t, pd, 0.0)
			assert.Less(t, pd, 1.0)
		}
	})

	t.Run("riskier features raise pd", func(t *testing.T) {
		base := map[string]float64{"utilization": 0.2, "debt_to_income": 0.2, "delinquencies_12m": 0}
		worse := map[string]float64{"utilization": 0.9, "debt_to_income": 0.6, "delinquencies_12m": 3}
		pdBase, err := m.PredictPD(base)
		require.NoError(t, err)
		pdWorse, err := m.PredictPD(worse)
		require.NoError(t, err)
		assert.Greater(t, pdWorse, pdBase)
	})

	t.Run("missing features are reported by name", func(t *testing.T) {
		_, err := m.PredictPD(map[string]float64{"utilization": 0.5})
		require.Error(t, err)
		var invalid *model.InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, invalid.Reason, "debt_to_income")
		assert.Contains(t, invalid.Reason, "delinquencies_12m")
	})

	t.Run("rejects non-finite feature value", func(t *testing.T) {
		_, err := m.PredictPD(map[string]float64{
			"utilization":       math.NaN(),
			"debt_to_income":    0.3,
			"delinquencies_12m": 0,
		})
		require.Error(t, err)
	})

	t.Run("extra features are ignored", func(t *testing.T) {
		pd, err := m.PredictPD(map[string]float64{
			"utilization":       0.3,
			"debt_to_income":    0.3,
			"delinquencies_12m": 0,
			"shoe_size":         42,
		})
		require.NoError(t, err)
		assert.Greater(t, pd, 0.0)
	})
}

func TestLogistic_FeatureNames(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, []string{"utilization", "debt_to_income", "delinquencies_12m"}, m.FeatureNames())
}
