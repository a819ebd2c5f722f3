package data

import (
	"encoding/json"
	"os"

	"loan-pricing/internal/model"
)

// ApplicantBatch matches the JSON shape of a batch pricing file.
//
// Example:
//
//	{
//	  "applicants": [ {"id": "a-1", "pd": 0.03, "principal": 10000, "term_months": 24} ]
//	}
type ApplicantBatch struct {
	Applicants []model.Applicant `json:"applicants"`
}

func LoadApplicantsJSON(path string) (*ApplicantBatch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var batch ApplicantBatch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// GroupByTerm splits a batch into term-keyed slices.
func GroupByTerm(batch *ApplicantBatch) map[int][]model.Applicant {
	out := map[int][]model.Applicant{}
	if batch == nil {
		return out
	}
	for _, a := range batch.Applicants {
		out[a.TermMonths] = append(out[a.TermMonths], a)
	}
	return out
}
