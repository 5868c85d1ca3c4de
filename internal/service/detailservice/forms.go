package detailservice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/pkg/format"
)

type AgreementForm struct {
	TotalValue        string
	InstallmentsCount string
	InstallmentValue  string
	FirstDueDate      string
	HasEntry          bool
	EntryValue        string
	EntryViaAlvara    bool
	EntryDate         string

	// dueFrom is the entry date FirstDueDate was last derived from.
	dueFrom string
}

func FormFromAgreement(a domain.Agreement) AgreementForm {
	return AgreementForm{
		TotalValue:        a.TotalValue.StringFixed(2),
		InstallmentsCount: strconv.Itoa(a.InstallmentsCount),
		InstallmentValue:  a.InstallmentValue.StringFixed(2),
		FirstDueDate:      a.FirstDueDate,
		HasEntry:          a.HasEntry,
		EntryValue:        a.EntryValue.StringFixed(2),
		EntryViaAlvara:    a.EntryViaAlvara,
		EntryDate:         a.EntryDate,
		dueFrom:           a.EntryDate,
	}
}

// Autofill recomputes the installment value whenever total, entry and count
// are valid. The first due date follows the entry date each time the entry
// date changes; a date typed for an unchanged entry date is kept.
func (f AgreementForm) Autofill() AgreementForm {
	total, errTotal := format.ParseAmount(f.TotalValue)
	count, errCount := strconv.Atoi(strings.TrimSpace(f.InstallmentsCount))
	entry := decimal.Zero
	if f.HasEntry && strings.TrimSpace(f.EntryValue) != "" {
		var err error
		if entry, err = format.ParseAmount(f.EntryValue); err != nil {
			return f
		}
	}
	if errTotal == nil && errCount == nil {
		if value, ok := InstallmentValue(total, entry, count); ok {
			f.InstallmentValue = value.StringFixed(2)
		}
	}

	entryDate := strings.TrimSpace(f.EntryDate)
	if f.HasEntry && (entryDate != f.dueFrom || strings.TrimSpace(f.FirstDueDate) == "") {
		if due, ok := FirstDueDate(entryDate); ok {
			f.FirstDueDate = due
			f.dueFrom = entryDate
		}
	}
	return f
}

func (f AgreementForm) Payload(caseID string) (dto.AgreementRequestDTO, error) {
	req := dto.AgreementRequestDTO{CaseID: caseID, HasEntry: f.HasEntry}

	total, err := format.ParseAmount(f.TotalValue)
	if err != nil || !total.IsPositive() {
		return req, ErrInvalidTotal
	}
	req.TotalValue = total.InexactFloat64()

	count, err := strconv.Atoi(strings.TrimSpace(f.InstallmentsCount))
	if err != nil || count < 1 {
		return req, ErrInvalidCount
	}
	req.InstallmentsCount = count

	value, err := format.ParseAmount(f.InstallmentValue)
	if err != nil || !value.IsPositive() {
		return req, ErrInvalidInstallment
	}
	req.InstallmentValue = value.InexactFloat64()

	if strings.TrimSpace(f.FirstDueDate) == "" {
		return req, ErrDueDateRequired
	}
	if req.FirstDueDate, err = format.NormalizeDate(f.FirstDueDate); err != nil {
		return req, fmt.Errorf("first_due_date: %w", err)
	}

	if !f.HasEntry {
		return req, nil
	}
	entry, err := format.ParseAmount(f.EntryValue)
	if err != nil || !entry.IsPositive() || !entry.LessThan(total) {
		return req, ErrInvalidEntry
	}
	req.EntryValue = entry.InexactFloat64()
	req.EntryViaAlvara = f.EntryViaAlvara
	if strings.TrimSpace(f.EntryDate) != "" {
		date, err := format.NormalizeDate(f.EntryDate)
		if err != nil {
			return req, fmt.Errorf("entry_date: %w", err)
		}
		req.EntryDate = &date
	}
	return req, nil
}

// PaymentForm edits an installment. Leaving both paid fields blank clears a
// registered payment.
type PaymentForm struct {
	PaidDate  string
	PaidValue string
	DueDate   string
}

func (f PaymentForm) Payload() (dto.InstallmentUpdateDTO, error) {
	var req dto.InstallmentUpdateDTO

	date, value := strings.TrimSpace(f.PaidDate), strings.TrimSpace(f.PaidValue)
	switch {
	case date == "" && value == "":
	case date == "" || value == "":
		return req, ErrIncompletePayment
	default:
		paidDate, err := format.NormalizeDate(date)
		if err != nil {
			return req, fmt.Errorf("paid_date: %w", err)
		}
		amount, err := format.ParseAmount(value)
		if err != nil || amount.IsNegative() {
			return req, ErrInvalidPayment
		}
		paidValue := amount.InexactFloat64()
		req.PaidDate, req.PaidValue = &paidDate, &paidValue
	}

	if strings.TrimSpace(f.DueDate) != "" {
		due, err := format.NormalizeDate(f.DueDate)
		if err != nil {
			return req, fmt.Errorf("due_date: %w", err)
		}
		req.DueDate = &due
	}
	return req, nil
}

type AlvaraForm struct {
	DataAlvara         string
	ValorAlvara        string
	BeneficiarioCodigo string
	Observacoes        string
	StatusAlvara       string
}

func FormFromAlvara(a domain.Alvara) AlvaraForm {
	return AlvaraForm{
		DataAlvara:         a.DataAlvara,
		ValorAlvara:        a.ValorAlvara.StringFixed(2),
		BeneficiarioCodigo: a.BeneficiarioCodigo,
		Observacoes:        a.Observacoes,
		StatusAlvara:       a.StatusAlvara,
	}
}

func (f AlvaraForm) Payload(caseID string) (dto.AlvaraRequestDTO, error) {
	req := dto.AlvaraRequestDTO{CaseID: caseID, Observacoes: strings.TrimSpace(f.Observacoes)}

	date, err := format.NormalizeDate(f.DataAlvara)
	if err != nil {
		return req, fmt.Errorf("data_alvara: %w", err)
	}
	req.DataAlvara = date

	value, err := format.ParseAmount(f.ValorAlvara)
	if err != nil || !value.IsPositive() {
		return req, ErrInvalidAlvaraValue
	}
	req.ValorAlvara = value.InexactFloat64()

	switch code := strings.TrimSpace(f.BeneficiarioCodigo); code {
	case domain.Beneficiary31, domain.Beneficiary14:
		req.BeneficiarioCodigo = code
	default:
		return req, ErrInvalidBeneficiary
	}

	switch status := strings.TrimSpace(f.StatusAlvara); status {
	case "":
		req.StatusAlvara = domain.AlvaraPending
	case domain.AlvaraPending, domain.AlvaraPaid:
		req.StatusAlvara = status
	default:
		return req, ErrInvalidAlvaraStatus
	}
	return req, nil
}
