package handlers

import (
	"net/http"

	"loan-pricing/internal/analysis"
	"loan-pricing/internal/api/models"
	"loan-pricing/internal/model"
	"loan-pricing/internal/quote"
	"loan-pricing/internal/registry"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles pricing requests
type QuoteHandler struct {
	registry *registry.Registry
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(reg *registry.Registry) *QuoteHandler {
	return &QuoteHandler{registry: reg}
}

// BuildQuote handles POST /api/v1/quote
func (h *QuoteHandler) BuildQuote(c *gin.Context) {
	var req models.QuoteRequest
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
	in := quote.Input{
		PD:         *req.PD,
		Principal:  req.Amount,
		TermMonths: req.TermMonths,
		Fees:       feesFromPayload(req.Fees),
	}

	q, err := bundle.Engine.Build(in)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := toQuoteResponse(q, req.Fees)
	if req.Options.IncludeSchedule {
		rows, err := bundle.Engine.Schedule(in)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.Schedule = toScheduleRows(rows)
	}

	c.JSON(http.StatusOK, resp)
}

// BatchQuote handles POST /api/v1/quote/batch
func (h *QuoteHandler) BatchQuote(c *gin.Context) {
	var req models.BatchQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	applicants := make([]model.Applicant, len(req.Applicants))
	for i, a := range req.Applicants {
		applicants[i] = model.Applicant{
			ID:         a.ID,
			PD:         a.PD,
			Principal:  a.Principal,
			TermMonths: a.TermMonths,
		}
	}

	bundle := h.registry.Current()
	rows, skipped, err := analysis.QuoteAll(bundle.Engine, applicants)
	if err != nil {
		writeError(c, err)
		return
	}
	ranked := analysis.RankBySpread(rows)
	summary := analysis.Summarize(ranked, skipped)

	results := make([]models.BatchQuoteResult, len(ranked))
	for i, r := range ranked {
		results[i] = models.BatchQuoteResult{
			Rank:  i + 1,
			ID:    r.Applicant.ID,
			Quote: toQuoteResponse(r.Quote, nil),
		}
	}

	c.JSON(http.StatusOK, models.BatchQuoteResponse{
		Results: results,
		Summary: models.PortfolioSummary{
			Count:           summary.Count,
			Skipped:         summary.Skipped,
			Approved:        summary.Approved,
			ApprovalRate:    summary.ApprovalRate,
			MeanRateMonthly: round6(summary.MeanRateMonthly),
			MinRateMonthly:  round6(summary.MinRateMonthly),
			MaxRateMonthly:  round6(summary.MaxRateMonthly),
			MeanSpreadBps:   summary.MeanSpreadBps,
			BandCounts:      summary.BandCounts,
		},
	})
}
