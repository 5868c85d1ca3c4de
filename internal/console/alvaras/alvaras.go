package alvaras

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/service/alvaraservice"
	"github.com/GlebRadaev/acordos/pkg/format"
)

var ErrNotPending = errors.New("alvará is not pending")

type Service interface {
	List(ctx context.Context, filter alvaraservice.Filter) ([]domain.PendingAlvara, error)
	MarkPaid(ctx context.Context, row domain.PendingAlvara, filter alvaraservice.Filter) ([]domain.PendingAlvara, error)
}

type AlvarasHandler struct {
	alvaraService Service
	term          *ui.Terminal
}

func New(alvaraService Service, term *ui.Terminal) *AlvarasHandler {
	return &AlvarasHandler{
		alvaraService: alvaraService,
		term:          term,
	}
}

func filterFromFlags(cmd *cobra.Command) alvaraservice.Filter {
	flags := cmd.Flags()
	var f alvaraservice.Filter
	f.Debtor, _ = flags.GetString("debtor")
	f.Process, _ = flags.GetString("process")
	f.Beneficiary, _ = flags.GetString("beneficiario")
	f.Order, _ = flags.GetString("order")
	return f
}

func (h *AlvarasHandler) List(cmd *cobra.Command, _ []string) error {
	rows, err := h.alvaraService.List(cmd.Context(), filterFromFlags(cmd))
	if err != nil {
		return err
	}
	return h.render(rows)
}

// Pay marks one pending alvará as paid and shows what is still pending
// under the same filter.
func (h *AlvarasHandler) Pay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	filter := filterFromFlags(cmd)
	rows, err := h.alvaraService.List(ctx, alvaraservice.Filter{})
	if err != nil {
		return err
	}
	row, ok := alvaraservice.Find(rows, args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotPending, args[0])
	}

	question := fmt.Sprintf("Mark the alvará of %s (%s, %s) as paid?",
		row.Devedor, format.BRLDecimal(row.Valor), format.DateBR(row.Data))
	ok, err = h.term.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return ui.ErrCancelled
	}

	remaining, err := h.alvaraService.MarkPaid(ctx, row, filter)
	if err != nil {
		return err
	}
	h.term.Success("Alvará marked as paid")
	return h.render(remaining)
}

func (h *AlvarasHandler) render(rows []domain.PendingAlvara) error {
	if len(rows) == 0 {
		h.term.Println("No pending alvarás")
		return nil
	}

	total := decimal.Zero
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		total = total.Add(r.Valor)
		table = append(table, []string{
			r.AlvaraID, r.Devedor, r.NumeroProcesso, format.DateBR(r.Data),
			format.BRLDecimal(r.Valor), r.Beneficiario, r.Observacoes,
		})
	}
	if err := h.term.Table([]string{"ID", "DEBTOR", "PROCESS", "DATE", "VALUE", "BENEFICIARY", "NOTES"}, table); err != nil {
		return err
	}
	h.term.Printf("%d pending, %s in total\n", len(rows), format.BRLDecimal(total))
	return nil
}
