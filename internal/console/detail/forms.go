package detail

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/service/detailservice"
	"github.com/GlebRadaev/acordos/pkg/format"
)

func (h *DetailHandler) CreateAgreement(cmd *cobra.Command, args []string) error {
	caseID := args[0]
	var form detailservice.AgreementForm
	var created *domain.Agreement
	err := h.term.Retry(func() error {
		if err := h.fillAgreement(&form); err != nil {
			return err
		}
		var err error
		created, err = h.detailService.CreateAgreement(cmd.Context(), caseID, form)
		return err
	})
	if err != nil {
		return err
	}
	h.term.Success(fmt.Sprintf("Agreement created with %d installments", created.InstallmentsCount))
	return nil
}

func (h *DetailHandler) EditAgreement(cmd *cobra.Command, args []string) error {
	caseID := args[0]
	d, err := h.load(cmd.Context(), caseID)
	if err != nil {
		return err
	}
	if d.Agreement == nil {
		return detailservice.ErrNoAgreement
	}

	agreementID := d.Agreement.ID
	form := detailservice.FormFromAgreement(*d.Agreement)
	err = h.term.Retry(func() error {
		if err := h.fillAgreement(&form); err != nil {
			return err
		}
		_, err := h.detailService.UpdateAgreement(cmd.Context(), caseID, agreementID, form)
		return err
	})
	if err != nil {
		return err
	}
	h.term.Success("Agreement updated")
	return nil
}

// fillAgreement asks total, entry and count first so that the installment
// value and first due date can be proposed from them.
func (h *DetailHandler) fillAgreement(form *detailservice.AgreementForm) error {
	var err error
	if form.TotalValue, err = h.term.AskDefault("Total value", form.TotalValue); err != nil {
		return err
	}
	if form.HasEntry, err = h.term.AskBool("Has entry", form.HasEntry); err != nil {
		return err
	}
	if form.HasEntry {
		if form.EntryValue, err = h.term.AskDefault("Entry value", form.EntryValue); err != nil {
			return err
		}
		if form.EntryDate, err = h.term.AskDefault("Entry date", form.EntryDate); err != nil {
			return err
		}
		if form.EntryViaAlvara, err = h.term.AskBool("Entry paid through alvará", form.EntryViaAlvara); err != nil {
			return err
		}
	}
	if form.InstallmentsCount, err = h.term.AskDefault("Number of installments", form.InstallmentsCount); err != nil {
		return err
	}

	*form = form.Autofill()
	if form.InstallmentValue, err = h.term.AskDefault("Installment value", form.InstallmentValue); err != nil {
		return err
	}
	form.FirstDueDate, err = h.term.AskDefault("First due date", form.FirstDueDate)
	return err
}

func (h *DetailHandler) DeleteAgreement(cmd *cobra.Command, args []string) error {
	d, err := h.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if d.Agreement == nil {
		return detailservice.ErrNoAgreement
	}

	h.term.Warn(fmt.Sprintf("Deleting the agreement also deletes its %d installments. This cannot be undone.", len(d.Installments)))
	if err := h.confirm("Delete the agreement of " + d.Case.DebtorName + "?"); err != nil {
		return err
	}
	if err := h.detailService.DeleteAgreement(cmd.Context(), d.Agreement.ID); err != nil {
		return err
	}
	h.term.Success("Agreement deleted")
	return nil
}

// PayInstallment registers a payment, proposing today and the scheduled
// value.
func (h *DetailHandler) PayInstallment(cmd *cobra.Command, args []string) error {
	d, err := h.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	inst, err := findInstallment(d, args[1])
	if err != nil {
		return err
	}

	form := detailservice.PaymentForm{
		PaidDate:  format.DateBR(h.now().Format(format.ISODate)),
		PaidValue: scheduledValue(d.Agreement, inst),
	}
	return h.submitPayment(cmd, inst, form, false)
}

// EditInstallment changes payment and due date; clearing both payment fields
// reopens the installment.
func (h *DetailHandler) EditInstallment(cmd *cobra.Command, args []string) error {
	d, err := h.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	inst, err := findInstallment(d, args[1])
	if err != nil {
		return err
	}

	form := detailservice.PaymentForm{DueDate: format.DateBR(inst.DueDate)}
	if inst.PaidDate != nil {
		form.PaidDate = format.DateBR(*inst.PaidDate)
	}
	if inst.PaidValue != nil {
		form.PaidValue = inst.PaidValue.StringFixed(2)
	}
	return h.submitPayment(cmd, inst, form, true)
}

func (h *DetailHandler) submitPayment(cmd *cobra.Command, inst domain.Installment, form detailservice.PaymentForm, withDue bool) error {
	h.term.Printf("Installment %d, due %s\n", inst.Number, format.DateBR(inst.DueDate))
	err := h.term.Retry(func() error {
		var err error
		if form.PaidDate, err = h.term.AskDefault("Paid on", form.PaidDate); err != nil {
			return err
		}
		if form.PaidValue, err = h.term.AskDefault("Paid value", form.PaidValue); err != nil {
			return err
		}
		if withDue {
			if form.DueDate, err = h.term.AskDefault("Due date", form.DueDate); err != nil {
				return err
			}
		}
		_, err = h.detailService.UpdateInstallment(cmd.Context(), inst.ID, form)
		return err
	})
	if err != nil {
		return err
	}
	h.term.Success(fmt.Sprintf("Installment %d saved", inst.Number))
	return nil
}

func scheduledValue(a *domain.Agreement, inst domain.Installment) string {
	if a == nil {
		return ""
	}
	if inst.IsEntry && a.HasEntry {
		return a.EntryValue.StringFixed(2)
	}
	return a.InstallmentValue.StringFixed(2)
}

func (h *DetailHandler) CreateAlvara(cmd *cobra.Command, args []string) error {
	caseID := args[0]
	form := detailservice.AlvaraForm{StatusAlvara: domain.AlvaraPending}
	err := h.term.Retry(func() error {
		if err := h.fillAlvara(&form); err != nil {
			return err
		}
		_, err := h.detailService.CreateAlvara(cmd.Context(), caseID, form)
		return err
	})
	if err != nil {
		return err
	}
	h.term.Success("Alvará registered")
	return nil
}

func (h *DetailHandler) EditAlvara(cmd *cobra.Command, args []string) error {
	d, err := h.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	alvara, err := findAlvara(d, args[1])
	if err != nil {
		return err
	}

	form := detailservice.FormFromAlvara(alvara)
	err = h.term.Retry(func() error {
		if err := h.fillAlvara(&form); err != nil {
			return err
		}
		_, err := h.detailService.UpdateAlvara(cmd.Context(), alvara.ID, form)
		return err
	})
	if err != nil {
		return err
	}
	h.term.Success("Alvará updated")
	return nil
}

func (h *DetailHandler) fillAlvara(form *detailservice.AlvaraForm) error {
	var err error
	if form.DataAlvara, err = h.term.AskDefault("Date", form.DataAlvara); err != nil {
		return err
	}
	if form.ValorAlvara, err = h.term.AskDefault("Value", form.ValorAlvara); err != nil {
		return err
	}
	if form.BeneficiarioCodigo, err = h.term.AskDefault("Beneficiary (31 or 14)", form.BeneficiarioCodigo); err != nil {
		return err
	}
	if form.Observacoes, err = h.term.AskDefault("Notes", form.Observacoes); err != nil {
		return err
	}
	status := strings.Join([]string{domain.AlvaraPending, domain.AlvaraPaid}, " | ")
	form.StatusAlvara, err = h.term.AskDefault("Status ("+status+")", form.StatusAlvara)
	return err
}

func (h *DetailHandler) ToggleAlvara(cmd *cobra.Command, args []string) error {
	d, err := h.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	alvara, err := findAlvara(d, args[1])
	if err != nil {
		return err
	}

	updated, err := h.detailService.ToggleAlvara(cmd.Context(), alvara)
	if err != nil {
		return err
	}
	h.term.Success("Alvará is now " + updated.StatusAlvara)
	return nil
}

func (h *DetailHandler) DeleteAlvara(cmd *cobra.Command, args []string) error {
	d, err := h.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	alvara, err := findAlvara(d, args[1])
	if err != nil {
		return err
	}

	h.term.Warn("Deleting an alvará cannot be undone.")
	question := fmt.Sprintf("Delete the alvará of %s from %s?", format.BRLDecimal(alvara.ValorAlvara), format.DateBR(alvara.DataAlvara))
	if err := h.confirm(question); err != nil {
		return err
	}
	if err := h.detailService.DeleteAlvara(cmd.Context(), alvara.ID); err != nil {
		return err
	}
	h.term.Success("Alvará deleted")
	return nil
}
