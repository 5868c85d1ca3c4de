// Package format holds the Brazilian display conventions used by every view:
// DD/MM/YYYY dates, BRL currency and masked CPF numbers.
package format

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ISODate = "2006-01-02"
	BRDate  = "02/01/2006"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// DateBR turns YYYY-MM-DD into DD/MM/YYYY; anything else is returned as is.
func DateBR(iso string) string {
	if iso == "" {
		return ""
	}
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// DateISO turns DD/MM/YYYY into YYYY-MM-DD; anything else is returned as is.
func DateISO(br string) string {
	if br == "" {
		return ""
	}
	parts := strings.Split(br, "/")
	if len(parts) != 3 {
		return br
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ParseDate accepts YYYY-MM-DD or DD/MM/YYYY.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ISODate, BRDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// NormalizeDate returns s as YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(ISODate), nil
}

func BRL(v float64) string {
	return BRLDecimal(decimal.NewFromFloat(v))
}

func BRLDecimal(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + "R$ " + b.String() + "," + frac
}

// Fixed2 renders v with exactly two decimals and a dot separator.
func Fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// ParseAmount accepts "1234.56", "1234,56" and "1.234,56". A comma is the
// decimal separator when present, so "1,234.56" and "1,2,3" are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if comma := strings.Index(s, ","); comma >= 0 {
		if strings.Count(s, ",") > 1 || strings.LastIndex(s, ".") > comma {
			return decimal.Zero, ErrInvalidAmount
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func UnformatCPF(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CPF masks up to eleven digits as 000.000.000-00, dropping extra digits.
func CPF(v string) string {
	digits := UnformatCPF(v)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var b strings.Builder
	for i, r := range digits {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}
