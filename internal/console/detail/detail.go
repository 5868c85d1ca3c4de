package detail

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/service/detailservice"
	"github.com/GlebRadaev/acordos/pkg/format"
)

var (
	ErrUnknownTab         = errors.New("tab must be summary, agreement, installments, alvaras or all")
	ErrUnknownInstallment = errors.New("installment not found")
	ErrUnknownAlvara      = errors.New("alvará not found")
)

const (
	TabAll          = "all"
	TabSummary      = "summary"
	TabAgreement    = "agreement"
	TabInstallments = "installments"
	TabAlvaras      = "alvaras"
)

type Service interface {
	Load(ctx context.Context, caseID string) (*domain.CaseDetail, error)
	DeleteCase(ctx context.Context, caseID string) error
	CreateAgreement(ctx context.Context, caseID string, form detailservice.AgreementForm) (*domain.Agreement, error)
	UpdateAgreement(ctx context.Context, caseID, agreementID string, form detailservice.AgreementForm) (*domain.Agreement, error)
	DeleteAgreement(ctx context.Context, agreementID string) error
	UpdateInstallment(ctx context.Context, installmentID string, form detailservice.PaymentForm) (*domain.Installment, error)
	CreateAlvara(ctx context.Context, caseID string, form detailservice.AlvaraForm) (*domain.Alvara, error)
	UpdateAlvara(ctx context.Context, alvaraID string, form detailservice.AlvaraForm) (*domain.Alvara, error)
	ToggleAlvara(ctx context.Context, alvara domain.Alvara) (*domain.Alvara, error)
	DeleteAlvara(ctx context.Context, alvaraID string) error
}

type DetailHandler struct {
	detailService Service
	term          *ui.Terminal
	now           func() time.Time
}

func New(detailService Service, term *ui.Terminal) *DetailHandler {
	return &DetailHandler{
		detailService: detailService,
		term:          term,
		now:           time.Now,
	}
}

func (h *DetailHandler) Show(cmd *cobra.Command, args []string) error {
	tab, _ := cmd.Flags().GetString("tab")
	status, _ := cmd.Flags().GetString("status")
	if tab == "" {
		tab = TabAll
	}
	switch tab {
	case TabAll, TabSummary, TabAgreement, TabInstallments, TabAlvaras:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}

	d, err := h.detailService.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	show := func(name string) bool { return tab == TabAll || tab == name }
	if show(TabSummary) {
		if err := h.renderSummary(d); err != nil {
			return err
		}
	}
	if show(TabAgreement) {
		if err := h.renderAgreement(d); err != nil {
			return err
		}
	}
	if show(TabInstallments) {
		if err := h.renderInstallments(d, status); err != nil {
			return err
		}
	}
	if show(TabAlvaras) {
		return h.renderAlvaras(d)
	}
	return nil
}

func (h *DetailHandler) renderSummary(d *domain.CaseDetail) error {
	c := d.Case
	h.term.Heading(c.DebtorName)
	err := h.term.Fields([]ui.Field{
		{Label: "ID", Value: c.ID},
		{Label: "Internal ID", Value: c.InternalID},
		{Label: "CPF", Value: format.CPF(c.CPF)},
		{Label: "WhatsApp", Value: c.WhatsApp},
		{Label: "Email", Value: c.Email},
		{Label: "Process", Value: c.NumeroProcesso},
		{Label: "Filed", Value: format.DateBR(c.DataProtocolo)},
		{Label: "Stored status", Value: c.StatusProcesso},
		{Label: "Status", Value: domain.DisplayProcessStatus(c)},
		{Label: "Polo ativo", Value: c.PoloAtivoText},
		{Label: "Course", Value: c.Curso},
		{Label: "Enrolled", Value: format.DateBR(c.DataMatricula)},
		{Label: "Value of the claim", Value: format.BRLDecimal(c.ValueCausa)},
		{Label: "Total received", Value: format.BRLDecimal(d.TotalReceived)},
		{Label: "Recovered", Value: d.PercentRecovered.StringFixed(1) + "%"},
		{Label: "Notes", Value: c.Notes},
	})
	if err != nil {
		return err
	}
	if len(d.Installments) == 0 {
		return nil
	}

	counts := domain.CountByStatus(d.Installments)
	rows := make([][]string, 0, len(domain.InstallmentStatuses))
	for _, s := range domain.InstallmentStatuses {
		rows = append(rows, []string{s, strconv.Itoa(counts[s])})
	}
	h.term.Println()
	return h.term.Table([]string{"INSTALLMENTS", "COUNT"}, rows)
}

func (h *DetailHandler) renderAgreement(d *domain.CaseDetail) error {
	h.term.Heading("Agreement")
	a := d.Agreement
	if a == nil {
		h.term.Println("No agreement yet")
		return nil
	}
	fields := []ui.Field{
		{Label: "ID", Value: a.ID},
		{Label: "Total", Value: format.BRLDecimal(a.TotalValue)},
		{Label: "Installments", Value: fmt.Sprintf("%d x %s", a.InstallmentsCount, format.BRLDecimal(a.InstallmentValue))},
		{Label: "First due date", Value: format.DateBR(a.FirstDueDate)},
	}
	if a.HasEntry {
		entry := format.BRLDecimal(a.EntryValue)
		if a.EntryViaAlvara {
			entry += " (via alvará)"
		}
		fields = append(fields,
			ui.Field{Label: "Entry", Value: entry},
			ui.Field{Label: "Entry date", Value: format.DateBR(a.EntryDate)},
		)
	}
	return h.term.Fields(fields)
}

func (h *DetailHandler) renderInstallments(d *domain.CaseDetail, status string) error {
	h.term.Heading("Installments")
	installments := d.Installments
	if status != "" {
		installments = detailservice.InstallmentsWithStatus(installments, status)
	}
	if len(installments) == 0 {
		h.term.Println("No installments")
		return nil
	}

	rows := make([][]string, 0, len(installments))
	for _, inst := range installments {
		number := strconv.Itoa(inst.Number)
		if inst.IsEntry {
			number += " (entry)"
		}
		var paidDate, paidValue string
		if inst.PaidDate != nil {
			paidDate = format.DateBR(*inst.PaidDate)
		}
		if inst.PaidValue != nil {
			paidValue = format.BRLDecimal(*inst.PaidValue)
		}
		rows = append(rows, []string{number, format.DateBR(inst.DueDate), paidDate, paidValue, inst.StatusCalc})
	}
	return h.term.Table([]string{"#", "DUE", "PAID ON", "PAID", "STATUS"}, rows)
}

func (h *DetailHandler) renderAlvaras(d *domain.CaseDetail) error {
	h.term.Heading("Alvarás")
	if len(d.Alvaras) == 0 {
		h.term.Println("No alvarás")
		return nil
	}
	rows := make([][]string, 0, len(d.Alvaras))
	for _, a := range d.Alvaras {
		rows = append(rows, []string{
			a.ID,
			format.DateBR(a.DataAlvara),
			format.BRLDecimal(a.ValorAlvara),
			a.BeneficiarioCodigo,
			a.StatusAlvara,
			a.Observacoes,
		})
	}
	return h.term.Table([]string{"ID", "DATE", "VALUE", "BENEFICIARY", "STATUS", "NOTES"}, rows)
}

func (h *DetailHandler) DeleteCase(cmd *cobra.Command, args []string) error {
	id := args[0]
	h.term.Warn("Deleting a case also deletes its agreement, installments and alvarás. This cannot be undone.")
	if err := h.confirm("Delete case " + id + "?"); err != nil {
		return err
	}
	if err := h.detailService.DeleteCase(cmd.Context(), id); err != nil {
		return err
	}
	h.term.Success("Case " + id + " deleted")
	return nil
}

func (h *DetailHandler) confirm(question string) error {
	ok, err := h.term.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return ui.ErrCancelled
	}
	return nil
}

func (h *DetailHandler) load(ctx context.Context, caseID string) (*domain.CaseDetail, error) {
	return h.detailService.Load(ctx, caseID)
}

func findInstallment(d *domain.CaseDetail, number string) (domain.Installment, error) {
	n, err := strconv.Atoi(number)
	if err == nil {
		for _, inst := range d.Installments {
			if inst.Number == n {
				return inst, nil
			}
		}
	}
	return domain.Installment{}, fmt.Errorf("%w: %s", ErrUnknownInstallment, number)
}

func findAlvara(d *domain.CaseDetail, id string) (domain.Alvara, error) {
	for _, a := range d.Alvaras {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Alvara{}, fmt.Errorf("%w: %s", ErrUnknownAlvara, id)
}
