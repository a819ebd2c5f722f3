package handlers

import (
	"net/http"

	"loan-pricing/internal/api/models"
	"loan-pricing/internal/registry"

	"github.com/gin-gonic/gin"
)

// ScorecardHandler exposes the configured scorecard
type ScorecardHandler struct {
	registry *registry.Registry
}

// NewScorecardHandler creates a new scorecard handler
func NewScorecardHandler(reg *registry.Registry) *ScorecardHandler {
	return &ScorecardHandler{registry: reg}
}

// GetScorecard handles GET /api/v1/scorecard
func (h *ScorecardHandler) GetScorecard(c *gin.Context) {
	bundle := h.registry.Current()
	params := bundle.Scorecard.Params()

	cuts := bundle.Scorecard.Bands()
	bands := make([]models.BandCut, len(cuts))
	for i, b := range cuts {
		bands[i] = models.BandCut{Band: b.Band, Min: b.Min}
	}

	c.JSON(http.StatusOK, models.ScorecardResponse{
		Scorecard: models.ScorecardParams{
			S0:  params.S0,
			O0:  params.O0,
			PDO: params.PDO,
		},
		PDFloor:   params.PDFloor,
		PDCeiling: params.PDCeiling,
		ScoreMin:  params.ScoreMin,
		ScoreMax:  params.ScoreMax,
		Bands:     bands,
	})
}
