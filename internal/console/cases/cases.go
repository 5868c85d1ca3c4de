package cases

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/service/caseservice"
	"github.com/GlebRadaev/acordos/pkg/format"
	"github.com/GlebRadaev/acordos/pkg/validate"
)

type Service interface {
	List(ctx context.Context, filter dto.CaseFilterDTO) (*domain.CasePage, error)
	Get(ctx context.Context, id string) (*domain.Case, error)
	Create(ctx context.Context, form caseservice.CaseForm) (*domain.Case, error)
	Update(ctx context.Context, id string, form caseservice.CaseForm) (*domain.Case, error)
	Delete(ctx context.Context, id string) error
	BulkUpdate(ctx context.Context, ids []string, fields caseservice.BulkFields) (*dto.BulkResponseDTO, error)
	BulkDelete(ctx context.Context, ids []string) (*dto.BulkResponseDTO, error)
}

type CasesHandler struct {
	caseService Service
	term        *ui.Terminal
}

func New(caseService Service, term *ui.Terminal) *CasesHandler {
	return &CasesHandler{
		caseService: caseService,
		term:        term,
	}
}

func (h *CasesHandler) List(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	var filter dto.CaseFilterDTO
	filter.Search, _ = flags.GetString("search")
	filter.StatusAcordo, _ = flags.GetString("status-acordo")
	filter.Beneficiario, _ = flags.GetString("beneficiario")
	filter.StatusProcesso, _ = flags.GetString("status-processo")
	filter.Sort, _ = flags.GetString("sort")
	filter.Page, _ = flags.GetInt("page")
	filter.Limit, _ = flags.GetInt("limit")

	page, err := h.caseService.List(cmd.Context(), filter)
	if err != nil {
		return err
	}
	if len(page.Items) == 0 {
		h.term.Println("No cases found")
		return nil
	}

	rows := make([][]string, 0, len(page.Items))
	for _, c := range page.Items {
		rows = append(rows, []string{
			c.ID,
			c.DebtorName,
			c.NumeroProcesso,
			format.BRLDecimal(c.ValueCausa),
			domain.DisplayProcessStatus(c),
			c.PercentRecovered.StringFixed(1) + "%",
			pendingLabel(c),
		})
	}
	if err := h.term.Table([]string{"ID", "DEBTOR", "PROCESS", "VALUE", "STATUS", "RECOVERED", "ALVARÁS"}, rows); err != nil {
		return err
	}
	h.term.Printf("\nPage %d of %d, %d cases\n", page.Page, max(page.TotalPages, 1), page.TotalItems)
	return nil
}

func pendingLabel(c domain.Case) string {
	switch {
	case c.PendingAlvaraCount > 0:
		return fmt.Sprintf("%d pending", c.PendingAlvaraCount)
	case c.HasPendingAlvara:
		return "pending"
	default:
		return ""
	}
}

func (h *CasesHandler) Create(cmd *cobra.Command, _ []string) error {
	var form caseservice.CaseForm
	var created *domain.Case
	err := h.term.Retry(func() error {
		if err := h.fill(&form); err != nil {
			return err
		}
		var err error
		created, err = h.caseService.Create(cmd.Context(), form)
		return err
	})
	if err != nil {
		return err
	}
	h.term.Success(fmt.Sprintf("Case %s created for %s", created.ID, created.DebtorName))
	return nil
}

func (h *CasesHandler) Edit(cmd *cobra.Command, args []string) error {
	id := args[0]
	current, err := h.caseService.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	form := caseservice.FormFromCase(*current)
	err = h.term.Retry(func() error {
		if err := h.fill(&form); err != nil {
			return err
		}
		_, err := h.caseService.Update(cmd.Context(), id, form)
		return err
	})
	if err != nil {
		return err
	}
	h.term.Success("Case " + id + " updated")
	return nil
}

// fill walks every form field; an empty answer keeps what is already there
// and "-" clears it.
func (h *CasesHandler) fill(form *caseservice.CaseForm) error {
	h.term.Println("Process status: " + strings.Join(domain.ProcessStatuses, ", "))
	fields := []struct {
		label string
		value *string
	}{
		{"Debtor name", &form.DebtorName},
		{"Internal ID", &form.InternalID},
		{"CPF", &form.CPF},
		{"WhatsApp", &form.WhatsApp},
		{"Email", &form.Email},
		{"Value of the claim", &form.ValueCausa},
		{"Polo ativo", &form.PoloAtivoText},
		{"Process number", &form.NumeroProcesso},
		{"Filing date", &form.DataProtocolo},
		{"Process status", &form.StatusProcesso},
		{"Enrollment date", &form.DataMatricula},
		{"Course", &form.Curso},
		{"Notes", &form.Notes},
	}
	for _, f := range fields {
		v, err := h.term.AskDefault(f.label, *f.value)
		if err != nil {
			return err
		}
		*f.value = v
	}
	if form.CPF != "" && !validate.IsCPF(form.CPF) {
		h.term.Warn("CPF " + form.CPF + " has invalid check digits")
	}
	return nil
}

func (h *CasesHandler) Delete(cmd *cobra.Command, args []string) error {
	id := args[0]
	h.term.Warn("Deleting a case also deletes its agreement, installments and alvarás. This cannot be undone.")
	ok, err := h.term.Confirm("Delete case " + id + "?")
	if err != nil {
		return err
	}
	if !ok {
		return ui.ErrCancelled
	}
	if err := h.caseService.Delete(cmd.Context(), id); err != nil {
		return err
	}
	h.term.Success("Case " + id + " deleted")
	return nil
}

func (h *CasesHandler) BulkUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	var fields caseservice.BulkFields
	fields.StatusProcesso, _ = flags.GetString("status-processo")
	fields.PoloAtivoText, _ = flags.GetString("polo-ativo")
	fields.Curso, _ = flags.GetString("curso")
	fields.DataMatricula, _ = flags.GetString("data-matricula")

	resp, err := h.caseService.BulkUpdate(cmd.Context(), args, fields)
	if err != nil {
		return err
	}
	h.term.Success(bulkMessage(resp, fmt.Sprintf("%d cases updated", resp.Updated)))
	return nil
}

func (h *CasesHandler) BulkDelete(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return caseservice.ErrEmptySelection
	}
	h.term.Warn(fmt.Sprintf("%d cases will be deleted with their agreements, installments and alvarás. This cannot be undone.", len(args)))
	ok, err := h.term.Confirm("Delete the selected cases?")
	if err != nil {
		return err
	}
	if !ok {
		return ui.ErrCancelled
	}

	resp, err := h.caseService.BulkDelete(cmd.Context(), args)
	if err != nil {
		return err
	}
	h.term.Success(bulkMessage(resp, fmt.Sprintf("%d cases deleted", resp.Deleted)))
	return nil
}

func bulkMessage(resp *dto.BulkResponseDTO, fallback string) string {
	if resp.Message != "" {
		return resp.Message
	}
	return fallback
}
