package handlers

import (
	"errors"
	"math"
	"net/http"

	"loan-pricing/internal/api/models"
	"loan-pricing/internal/calc"
	"loan-pricing/internal/model"
	"loan-pricing/internal/pricing"
	"loan-pricing/internal/quote"
	"loan-pricing/internal/unitecon"

	"github.com/gin-gonic/gin"
)

// writeError maps core errors to HTTP responses. InvalidInput is the
// caller's fault (400); anything else is unexpected here because the core
// has no transient failure modes.
func writeError(c *gin.Context, err error) {
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: invalid.Error(),
				Details: map[string]interface{}{"field": invalid.Field},
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "PRICING_ERROR",
			Message: err.Error(),
		},
	})
}

func round6(x float64) float64 { return math.Round(x*1e6) / 1e6 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }

func feesFromPayload(p *models.FeesPayload) model.FeeSchedule {
	if p == nil {
		return model.FeeSchedule{}
	}
	return model.FeeSchedule{
		Upfront:              p.Upfront,
		Monthly:              p.Monthly,
		DisbursementDiscount: p.DisbursementDiscount,
	}
}

func toPricingInfo(info pricing.Info) models.PricingInfo {
	return models.PricingInfo{
		Mode:       string(info.Mode),
		PolyDegree: info.PolyDegree,
		Caps: models.RateCaps{
			MinRateMonthly: info.Caps.MinRateMonthly,
			MaxRateMonthly: info.Caps.MaxRateMonthly,
		},
	}
}

func toUnitEconomics(ue unitecon.Result) *models.UnitEconomics {
	return &models.UnitEconomics{
		ELOverPrincipal:      round6(ue.ELOverPrincipal),
		RiskComponentMonthly: round6(ue.RiskComponentMonthly),
		Funding:              round6(ue.Funding),
		Opex:                 round6(ue.Opex),
		MarginTarget:         round6(ue.MarginTarget),
		IMinMonthly:          round6(ue.IMinMonthly),
		RateVsMinBps:         ue.RateVsMinBps,
		OKToLend:             ue.OKToLend,
	}
}

func toScheduleRows(rows []calc.ScheduleRow) []models.ScheduleRow {
	out := make([]models.ScheduleRow, len(rows))
	for i, r := range rows {
		out[i] = models.ScheduleRow{
			Period:         r.Period,
			OpeningBalance: r.OpeningBalance,
			Interest:       r.Interest,
			Amortization:   r.Amortization,
			Installment:    r.Installment,
			ClosingBalance: r.ClosingBalance,
		}
	}
	return out
}

// toQuoteResponse converts a full core quote, rounding at the boundary.
func toQuoteResponse(q quote.Quote, fees *models.FeesPayload) models.QuoteResponse {
	installment := round2(q.Installment)
	cetM := round6(q.CETMonthly)
	cetY := round6(q.CETYearly)
	return models.QuoteResponse{
		PD:    round6(q.PD),
		Score: q.Score,
		Band:  q.Band,
		Scorecard: models.ScorecardParams{
			S0:  q.Scorecard.S0,
			O0:  q.Scorecard.O0,
			PDO: q.Scorecard.PDO,
		},
		RateMonthly:   round6(q.RateMonthly),
		RateYearlyEff: round6(q.RateYearlyEff),
		Pricing:       toPricingInfo(q.Pricing),
		UnitEconomics: toUnitEconomics(q.UnitEconomics),
		Installment:   &installment,
		CETMonthly:    &cetM,
		CETYearly:     &cetY,
		Fees:          fees,
	}
}
