package domain

import "github.com/shopspring/decimal"

// Process status vocabulary accepted by the backend.
var ProcessStatuses = []string{
	"Execução",
	"Cobrança",
	"Cumprimento de Sentença",
	"Aguardando Alvará",
	"Acordo",
	"Sucesso",
	"Extinto",
}

// Installment status_calc values computed by the backend.
var InstallmentStatuses = []string{
	"Pago",
	"Pendente",
	"Atrasado",
	"Descumprido",
	"Dia de pagamento",
	"Pagamento próximo",
}

const (
	DisplayAgreement      = "Acordo"
	DisplayAwaitingPayout = "Aguardando alvará"
	DisplaySuccess        = "Sucesso"
)

var hundred = decimal.NewFromInt(100)

// DisplayProcessStatus is the status shown in lists. It never replaces the
// stored status_processo.
func DisplayProcessStatus(c Case) string {
	if !c.HasAgreement {
		return c.StatusProcesso
	}
	if c.PercentRecovered.LessThan(hundred) {
		return DisplayAgreement
	}
	if c.HasPendingAlvara || c.PendingAlvaraCount > 0 {
		return DisplayAwaitingPayout
	}
	return DisplaySuccess
}

// CountByStatus tallies installments by status_calc, keeping every known
// status present even at zero.
func CountByStatus(installments []Installment) map[string]int {
	counts := make(map[string]int, len(InstallmentStatuses))
	for _, s := range InstallmentStatuses {
		counts[s] = 0
	}
	for _, inst := range installments {
		counts[inst.StatusCalc]++
	}
	return counts
}

// ValidProcessStatus reports whether s belongs to the process vocabulary.
func ValidProcessStatus(s string) bool {
	for _, v := range ProcessStatuses {
		if v == s {
			return true
		}
	}
	return false
}
