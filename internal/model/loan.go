package model

// FeeSchedule describes optional fees folded into the CET cash flows.
// All amounts are in currency units, not rates.
type FeeSchedule struct {
	// Upfront is deducted from the disbursement at t=0 (origination fee, tax).
	Upfront float64 `json:"upfront,omitempty" yaml:"upfront"`
	// Monthly is added to every installment.
	Monthly float64 `json:"monthly,omitempty" yaml:"monthly"`
	// DisbursementDiscount is any extra t=0 deduction (transfer cost etc).
	DisbursementDiscount float64 `json:"disbursement_discount,omitempty" yaml:"disbursement_discount"`
}

// IsZero reports whether no fees are configured.
func (f FeeSchedule) IsZero() bool {
	return f.Upfront == 0 && f.Monthly == 0 && f.DisbursementDiscount == 0
}

// Applicant is one row of a batch pricing run.
type Applicant struct {
	ID         string  `json:"id"`
	PD         float64 `json:"pd"`
	Principal  float64 `json:"principal"`
	TermMonths int     `json:"term_months"`
}
