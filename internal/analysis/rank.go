package analysis

import "sort"

// RankBySpread orders priced applicants by spread over break-even,
// descending: the most profitable originations first. Ties break on lower
// PD so the ordering is deterministic.
func RankBySpread(rows []ApplicantQuote) []ApplicantQuote {
	out := make([]ApplicantQuote, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool {
		si := out[i].Quote.UnitEconomics.RateVsMinBps
		sj := out[j].Quote.UnitEconomics.RateVsMinBps
		if si != sj {
			return si > sj
		}
		return out[i].Quote.PD < out[j].Quote.PD
	})
	return out
}
