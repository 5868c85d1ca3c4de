package receipts

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/service/receiptservice"
	"github.com/GlebRadaev/acordos/pkg/format"
)

var ErrUnknownFormat = errors.New("format must be csv, pdf or all")

type Service interface {
	Load(ctx context.Context, filter dto.ReceiptFilterDTO) (*domain.ReceiptReport, error)
	ExportCSV(report *domain.ReceiptReport, dir string) (string, error)
	ExportPDF(ctx context.Context, filter dto.ReceiptFilterDTO, dir string) (string, error)
	ExportAll(ctx context.Context, filter dto.ReceiptFilterDTO, report *domain.ReceiptReport, dir string) (receiptservice.Exported, error)
}

type ReceiptsHandler struct {
	receiptService Service
	term           *ui.Terminal
}

func New(receiptService Service, term *ui.Terminal) *ReceiptsHandler {
	return &ReceiptsHandler{
		receiptService: receiptService,
		term:           term,
	}
}

func filterFromFlags(cmd *cobra.Command) dto.ReceiptFilterDTO {
	flags := cmd.Flags()
	var f dto.ReceiptFilterDTO
	f.Preset, _ = flags.GetString("period")
	f.StartDate, _ = flags.GetString("start")
	f.EndDate, _ = flags.GetString("end")
	f.Beneficiario, _ = flags.GetString("beneficiario")
	f.Type, _ = flags.GetString("type")
	if f.Preset == "" && (f.StartDate != "" || f.EndDate != "") {
		f.Preset = dto.PresetCustom
	}
	return f
}

func (h *ReceiptsHandler) Show(cmd *cobra.Command, _ []string) error {
	report, err := h.receiptService.Load(cmd.Context(), filterFromFlags(cmd))
	if err != nil {
		return err
	}

	k := report.KPIs
	h.term.Heading("Receipts")
	err = h.term.Fields([]ui.Field{
		{Label: "Total received", Value: format.BRLDecimal(k.TotalReceived)},
		{Label: "Beneficiary 31", Value: format.BRLDecimal(k.Total31)},
		{Label: "Beneficiary 14", Value: format.BRLDecimal(k.Total14)},
		{Label: "Installments", Value: format.BRLDecimal(k.TotalParcelas)},
		{Label: "Alvarás", Value: format.BRLDecimal(k.TotalAlvaras)},
		{Label: "Cases with receipts", Value: strconv.Itoa(k.CasesWithReceipts)},
	})
	if err != nil {
		return err
	}

	if len(report.MonthlyConsolidation) > 0 {
		h.term.Heading("By month")
		if err := h.term.Chart(chartGroups(report.MonthlyConsolidation)); err != nil {
			return err
		}
	}

	h.term.Heading("Detail")
	if len(report.Receipts) == 0 {
		h.term.Println("No receipts in this period")
	} else {
		rows := make([][]string, 0, len(report.Receipts))
		for _, r := range report.Receipts {
			rows = append(rows, []string{
				format.DateBR(r.Date), r.Debtor, r.NumeroProcesso, r.Type,
				format.BRLDecimal(r.Value), r.Beneficiario, r.Observacoes,
			})
		}
		if err := h.term.Table([]string{"DATE", "DEBTOR", "PROCESS", "TYPE", "VALUE", "BENEFICIARY", "NOTES"}, rows); err != nil {
			return err
		}
	}

	if len(report.MonthlyConsolidation) == 0 {
		return nil
	}
	h.term.Heading("Monthly consolidation")
	rows := make([][]string, 0, len(report.MonthlyConsolidation))
	for _, m := range report.MonthlyConsolidation {
		rows = append(rows, []string{
			m.Month,
			format.BRLDecimal(m.Total31), format.BRLDecimal(m.Total14),
			format.BRLDecimal(m.TotalParcelas), format.BRLDecimal(m.TotalAlvaras),
		})
	}
	return h.term.Table([]string{"MONTH", "31", "14", "INSTALLMENTS", "ALVARÁS"}, rows)
}

func chartGroups(months []domain.MonthlyConsolidation) []ui.BarGroup {
	groups := make([]ui.BarGroup, 0, len(months))
	for _, m := range months {
		groups = append(groups, ui.BarGroup{
			Title: m.Month,
			Bars: []ui.Bar{
				{Label: "31", Value: m.Total31},
				{Label: "14", Value: m.Total14},
				{Label: "Installments", Value: m.TotalParcelas},
				{Label: "Alvarás", Value: m.TotalAlvaras},
			},
		})
	}
	return groups
}

// Export writes the CSV from the loaded rows, downloads the PDF, or both at
// once.
func (h *ReceiptsHandler) Export(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	filter := filterFromFlags(cmd)
	kind, _ := cmd.Flags().GetString("format")
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "."
	}

	switch kind {
	case "", "csv":
		report, err := h.receiptService.Load(ctx, filter)
		if err != nil {
			return err
		}
		path, err := h.receiptService.ExportCSV(report, dir)
		if err != nil {
			return err
		}
		h.term.Success("CSV saved to " + path)
	case "pdf":
		path, err := h.receiptService.ExportPDF(ctx, filter, dir)
		if err != nil {
			return err
		}
		h.term.Success("PDF saved to " + path)
	case "all":
		report, err := h.receiptService.Load(ctx, filter)
		if err != nil {
			return err
		}
		exported, err := h.receiptService.ExportAll(ctx, filter, report, dir)
		if exported.CSV != "" {
			h.term.Success("CSV saved to " + exported.CSV)
		}
		if exported.PDF != "" {
			h.term.Success("PDF saved to " + exported.PDF)
		}
		return err
	default:
		return ErrUnknownFormat
	}
	return nil
}
