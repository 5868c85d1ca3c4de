package detailservice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/pkg/format"
)

// InstallmentValue splits what remains after the entry into count equal
// parts, rounded to cents. ok is false when the inputs can't produce a
// positive value.
func InstallmentValue(total, entry decimal.Decimal, count int) (decimal.Decimal, bool) {
	if count <= 0 || !total.IsPositive() || entry.IsNegative() {
		return decimal.Zero, false
	}
	remaining := total.Sub(entry)
	if !remaining.IsPositive() {
		return decimal.Zero, false
	}
	return remaining.Div(decimal.NewFromInt(int64(count))).Round(2), true
}

// AddMonthClamped moves t one calendar month ahead, landing on the last day
// of that month when the day doesn't exist there (Jan 31 -> Feb 28/29).
func AddMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// FirstDueDate suggests the first installment date from the entry date.
func FirstDueDate(entryDate string) (string, bool) {
	t, err := format.ParseDate(entryDate)
	if err != nil {
		return "", false
	}
	return AddMonthClamped(t).Format(format.ISODate), true
}

func InstallmentsWithStatus(installments []domain.Installment, status string) []domain.Installment {
	if status == "" {
		return installments
	}
	filtered := make([]domain.Installment, 0, len(installments))
	for _, inst := range installments {
		if inst.StatusCalc == status {
			filtered = append(filtered, inst)
		}
	}
	return filtered
}
