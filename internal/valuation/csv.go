package valuation

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

func WriteScheduleCSV(path string, schedule []CashFlowEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period",
		"payment_date",
		"coupon_payment",
		"cumulative_interest",
		"remaining_principal",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, entry := range schedule {
		row := []string{
			strconv.Itoa(entry.Period),
			fmtDate(entry.PaymentDate),
			fmtAmount(entry.CouponPayment),
			fmtAmount(entry.CumulativeInterest),
			fmtAmount(entry.RemainingPrincipal),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtAmount(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
