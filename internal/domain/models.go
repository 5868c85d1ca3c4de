package domain

import "github.com/shopspring/decimal"

const (
	AlvaraPending = "Aguardando alvará"
	AlvaraPaid    = "Alvará pago"
)

// Beneficiary codes as the backend knows them.
const (
	Beneficiary31 = "31"
	Beneficiary14 = "14"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type Case struct {
	ID                 string          `json:"id"`
	DebtorName         string          `json:"debtor_name"`
	InternalID         string          `json:"internal_id"`
	CPF                string          `json:"cpf"`
	WhatsApp           string          `json:"whatsapp"`
	Email              string          `json:"email"`
	ValueCausa         decimal.Decimal `json:"value_causa"`
	PoloAtivoText      string          `json:"polo_ativo_text"`
	PoloAtivoCodigo    string          `json:"polo_ativo_codigo"`
	Notes              string          `json:"notes"`
	NumeroProcesso     string          `json:"numero_processo"`
	DataProtocolo      string          `json:"data_protocolo"`
	StatusProcesso     string          `json:"status_processo"`
	DataMatricula      string          `json:"data_matricula"`
	Curso              string          `json:"curso"`
	HasAgreement       bool            `json:"has_agreement"`
	TotalReceived      decimal.Decimal `json:"total_received"`
	PercentRecovered   decimal.Decimal `json:"percent_recovered"`
	StatusAcordo       string          `json:"status_acordo"`
	HasPendingAlvara   bool            `json:"has_pending_alvara"`
	PendingAlvaraCount int             `json:"pending_alvara_count"`
}

type Agreement struct {
	ID                string          `json:"id"`
	CaseID            string          `json:"case_id"`
	TotalValue        decimal.Decimal `json:"total_value"`
	InstallmentsCount int             `json:"installments_count"`
	InstallmentValue  decimal.Decimal `json:"installment_value"`
	FirstDueDate      string          `json:"first_due_date"`
	HasEntry          bool            `json:"has_entry"`
	EntryValue        decimal.Decimal `json:"entry_value"`
	EntryViaAlvara    bool            `json:"entry_via_alvara"`
	EntryDate         string          `json:"entry_date"`
}

type Installment struct {
	ID          string           `json:"id"`
	AgreementID string           `json:"agreement_id"`
	Number      int              `json:"number"`
	DueDate     string           `json:"due_date"`
	PaidDate    *string          `json:"paid_date"`
	PaidValue   *decimal.Decimal `json:"paid_value"`
	IsEntry     bool             `json:"is_entry"`
	StatusCalc  string           `json:"status_calc"`
}

func (i Installment) Paid() bool {
	return i.PaidDate != nil && *i.PaidDate != ""
}

type Alvara struct {
	ID                 string          `json:"id"`
	CaseID             string          `json:"case_id"`
	DataAlvara         string          `json:"data_alvara"`
	ValorAlvara        decimal.Decimal `json:"valor_alvara"`
	BeneficiarioCodigo string          `json:"beneficiario_codigo"`
	Observacoes        string          `json:"observacoes"`
	StatusAlvara       string          `json:"status_alvara"`
}

func (a Alvara) Pending() bool {
	return a.StatusAlvara != AlvaraPaid
}

// CaseDetail is everything the detail view shows for one case.
type CaseDetail struct {
	Case             Case            `json:"case"`
	Agreement        *Agreement      `json:"agreement"`
	Installments     []Installment   `json:"installments"`
	Alvaras          []Alvara        `json:"alvaras"`
	TotalReceived    decimal.Decimal `json:"total_received"`
	PercentRecovered decimal.Decimal `json:"percent_recovered"`
}

type CasePage struct {
	Items      []Case `json:"items"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalItems int    `json:"total_items"`
	TotalPages int    `json:"total_pages"`
}

type PendingAlvara struct {
	AlvaraID       string          `json:"alvara_id"`
	CaseID         string          `json:"case_id"`
	Devedor        string          `json:"devedor"`
	NumeroProcesso string          `json:"numero_processo"`
	Data           string          `json:"data"`
	Valor          decimal.Decimal `json:"valor"`
	Beneficiario   string          `json:"beneficiario"`
	Observacoes    string          `json:"observacoes"`
}

type Receipt struct {
	Date           string          `json:"date"`
	Debtor         string          `json:"debtor"`
	NumeroProcesso string          `json:"numero_processo"`
	Type           string          `json:"type"`
	Value          decimal.Decimal `json:"value"`
	Beneficiario   string          `json:"beneficiario"`
	Observacoes    string          `json:"observacoes"`
}

type ReceiptKPIs struct {
	TotalReceived     decimal.Decimal `json:"total_received"`
	Total31           decimal.Decimal `json:"total_31"`
	Total14           decimal.Decimal `json:"total_14"`
	TotalParcelas     decimal.Decimal `json:"total_parcelas"`
	TotalAlvaras      decimal.Decimal `json:"total_alvaras"`
	CasesWithReceipts int             `json:"cases_with_receipts"`
}

type MonthlyConsolidation struct {
	Month         string          `json:"month"`
	Total31       decimal.Decimal `json:"total_31"`
	Total14       decimal.Decimal `json:"total_14"`
	TotalParcelas decimal.Decimal `json:"total_parcelas"`
	TotalAlvaras  decimal.Decimal `json:"total_alvaras"`
}

type ReceiptReport struct {
	KPIs                 ReceiptKPIs            `json:"kpis"`
	Receipts             []Receipt              `json:"receipts"`
	MonthlyConsolidation []MonthlyConsolidation `json:"monthly_consolidation"`
}

type ImportTotals struct {
	Cases        int `json:"cases"`
	Agreements   int `json:"agreements"`
	Installments int `json:"installments"`
	Alvaras      int `json:"alvaras"`
}

type ImportHistoryEntry struct {
	ID        string       `json:"id"`
	Filename  string       `json:"filename"`
	CreatedAt string       `json:"created_at"`
	Totals    ImportTotals `json:"totals"`
}
