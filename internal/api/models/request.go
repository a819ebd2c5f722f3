package models

// QuoteRequest represents the request body for pricing a single loan
type QuoteRequest struct {
	PD         *float64     `json:"pd" binding:"required"`
	Amount     float64      `json:"amount" binding:"required"`
	TermMonths int          `json:"term_months" binding:"required"`
	Fees       *FeesPayload `json:"fees,omitempty"`
	Options    QuoteOptions `json:"options,omitempty"`
}

// FeesPayload mirrors the optional fee schedule folded into the CET flows
type FeesPayload struct {
	Upfront              float64 `json:"upfront,omitempty"`
	Monthly              float64 `json:"monthly,omitempty"`
	DisbursementDiscount float64 `json:"disbursement_discount,omitempty"`
}

// QuoteOptions contains optional quote parameters
type QuoteOptions struct {
	IncludeSchedule bool `json:"include_schedule,omitempty"` // default: false
}

// ScoreRequest carries a raw feature vector for the PD model stub.
// Amount and term are optional; without them the response stops at
// score/band/rate, mirroring the scoring endpoint of the original service.
type ScoreRequest struct {
	Features   map[string]float64 `json:"features" binding:"required"`
	Amount     *float64           `json:"amount,omitempty"`
	TermMonths *int               `json:"term_months,omitempty"`
	Fees       *FeesPayload       `json:"fees,omitempty"`
}

// BatchQuoteRequest prices a set of applicants in one call
type BatchQuoteRequest struct {
	Applicants []ApplicantPayload `json:"applicants" binding:"required"`
}

// ApplicantPayload is one row of a batch request
type ApplicantPayload struct {
	ID         string  `json:"id,omitempty"`
	PD         float64 `json:"pd"`
	Principal  float64 `json:"principal"`
	TermMonths int     `json:"term_months"`
}
