package receiptservice

import (
	"strings"
	"time"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/pkg/format"
)

var csvHeader = []string{"Data", "Devedor", "Nº Processo", "Tipo", "Valor", "Beneficiário", "Observações"}

// CSV renders the loaded receipts: a header plus one line per receipt, every
// field quoted, lines joined by "\n" without a trailing newline.
func CSV(report *domain.ReceiptReport) ([]byte, error) {
	if report == nil || len(report.Receipts) == 0 {
		return nil, ErrNothingToExport
	}

	lines := make([]string, 0, len(report.Receipts)+1)
	lines = append(lines, csvLine(csvHeader))
	for _, r := range report.Receipts {
		lines = append(lines, csvLine([]string{
			format.DateBR(r.Date),
			r.Debtor,
			r.NumeroProcesso,
			r.Type,
			r.Value.StringFixed(2),
			r.Beneficiario,
			r.Observacoes,
		}))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func CSVFilename(now time.Time) string {
	return "recebimentos_" + now.Format(format.ISODate) + ".csv"
}

func PDFFilename(now time.Time) string {
	return "recebimentos_" + now.Format(format.ISODate) + ".pdf"
}
