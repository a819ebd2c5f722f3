package quote

import (
	"encoding/csv"
	"os"
	"strconv"

	"loan-pricing/internal/calc"
)

// WriteScheduleCSV writes an amortization schedule for offline audit.
func WriteScheduleCSV(path string, rows []calc.ScheduleRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period",
		"opening_balance",
		"interest",
		"amortization",
		"installment",
		"closing_balance",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Period),
			fmtMoney(r.OpeningBalance),
			fmtMoney(r.Interest),
			fmtMoney(r.Amortization),
			fmtMoney(r.Installment),
			fmtMoney(r.ClosingBalance),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtMoney(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
