package handlers

import (
	"net/http"

	"loan-pricing/internal/api/models"
	"loan-pricing/internal/calc"
	"loan-pricing/internal/registry"
	"loan-pricing/internal/unitecon"

	"github.com/gin-gonic/gin"
)

// ScoreHandler scores a raw feature vector through the PD model stub and
// then prices it. Sections of the response are conditional on what the
// caller supplied: unit economics needs a term, installment/CET need both
// amount and term.
type ScoreHandler struct {
	registry *registry.Registry
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(reg *registry.Registry) *ScoreHandler {
	return &ScoreHandler{registry: reg}
}

// Score handles POST /api/v1/score
func (h *ScoreHandler) Score(c *gin.Context) {
	var req models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	bundle := h.registry.Current()
	if bundle.Model == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MODEL_NOT_CONFIGURED",
				Message: "no PD model is configured; supply pd directly via /api/v1/quote",
			},
		})
		return
	}

	pd, err := bundle.Model.PredictPD(req.Features)
	if err != nil {
		writeError(c, err)
		return
	}

	assessment, err := bundle.Scorecard.ScoreAndBand(pd)
	if err != nil {
		writeError(c, err)
		return
	}
	rate, err := bundle.Pricing.SuggestRate(pd)
	if err != nil {
		writeError(c, err)
		return
	}

	params := bundle.Scorecard.Params()
	resp := models.QuoteResponse{
		PD:    round6(pd),
		Score: assessment.Score,
		Band:  assessment.Band,
		Scorecard: models.ScorecardParams{
			S0:  params.S0,
			O0:  params.O0,
			PDO: params.PDO,
		},
		RateMonthly:   round6(rate),
		RateYearlyEff: round6(calc.EffAnnualFromMonthly(rate)),
		Pricing:       toPricingInfo(bundle.Pricing.Info()),
	}

	// Unit economics needs the term to pro-rate the 12-month loss. The
	// amount only matters for absolute EL, so a notional 1.0 works when the
	// caller didn't send one; the rate components are principal-free.
	if req.TermMonths != nil {
		principal := 1.0
		if req.Amount != nil {
			principal = *req.Amount
		}
		ue, err := unitecon.Evaluate(pd, principal, *req.TermMonths, rate, bundle.Config.UnitEcon)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.UnitEconomics = toUnitEconomics(ue)
	}

	if req.Amount != nil && req.TermMonths != nil {
		installment, err := calc.PMT(rate, *req.TermMonths, *req.Amount)
		if err != nil {
			writeError(c, err)
			return
		}
		cetM, cetY, err := calc.CETFromFlows(*req.Amount, rate, *req.TermMonths, feesFromPayload(req.Fees))
		if err != nil {
			writeError(c, err)
			return
		}
		inst := round2(installment)
		cm := round6(cetM)
		cy := round6(cetY)
		resp.Installment = &inst
		resp.CETMonthly = &cm
		resp.CETYearly = &cy
		resp.Fees = req.Fees
	}

	c.JSON(http.StatusOK, resp)
}
