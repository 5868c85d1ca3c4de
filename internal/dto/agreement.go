package dto

type AgreementRequestDTO struct {
	CaseID            string  `json:"case_id"`
	TotalValue        float64 `json:"total_value"`
	InstallmentsCount int     `json:"installments_count"`
	InstallmentValue  float64 `json:"installment_value"`
	FirstDueDate      string  `json:"first_due_date"`
	HasEntry          bool    `json:"has_entry"`
	EntryValue        float64 `json:"entry_value"`
	EntryViaAlvara    bool    `json:"entry_via_alvara"`
	EntryDate         *string `json:"entry_date"`
}

type InstallmentUpdateDTO struct {
	PaidDate  *string  `json:"paid_date"`
	PaidValue *float64 `json:"paid_value"`
	DueDate   *string  `json:"due_date,omitempty"`
}

type AlvaraRequestDTO struct {
	CaseID             string  `json:"case_id,omitempty"`
	DataAlvara         string  `json:"data_alvara"`
	ValorAlvara        float64 `json:"valor_alvara"`
	BeneficiarioCodigo string  `json:"beneficiario_codigo"`
	Observacoes        string  `json:"observacoes"`
	StatusAlvara       string  `json:"status_alvara"`
}
