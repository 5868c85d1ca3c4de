package dto

// CaseRequestDTO is the body of POST /cases and PUT /cases/{id}. Pointer
// fields are omitted when the user left them blank.
type CaseRequestDTO struct {
	DebtorName     string  `json:"debtor_name"`
	InternalID     string  `json:"internal_id"`
	CPF            *string `json:"cpf,omitempty"`
	WhatsApp       *string `json:"whatsapp,omitempty"`
	Email          *string `json:"email,omitempty"`
	ValueCausa     float64 `json:"value_causa"`
	PoloAtivoText  string  `json:"polo_ativo_text"`
	Notes          string  `json:"notes"`
	NumeroProcesso string  `json:"numero_processo"`
	DataProtocolo  *string `json:"data_protocolo,omitempty"`
	StatusProcesso string  `json:"status_processo"`
	DataMatricula  *string `json:"data_matricula,omitempty"`
	Curso          string  `json:"curso"`
}

type BulkUpdateRequestDTO struct {
	CaseIDs []string          `json:"case_ids"`
	Updates map[string]string `json:"updates"`
}

type BulkDeleteRequestDTO struct {
	CaseIDs []string `json:"case_ids"`
}

type BulkResponseDTO struct {
	Message string `json:"message"`
	Updated int    `json:"updated,omitempty"`
	Deleted int    `json:"deleted,omitempty"`
}

type CaseFilterDTO struct {
	Search         string
	StatusAcordo   string
	Beneficiario   string
	StatusProcesso string
	Sort           string
	Page           int
	Limit          int
}
