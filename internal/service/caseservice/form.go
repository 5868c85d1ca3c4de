package caseservice

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/pkg/format"
)

// CaseForm holds the raw text the user typed for a case.
type CaseForm struct {
	DebtorName     string
	InternalID     string
	CPF            string
	WhatsApp       string
	Email          string
	ValueCausa     string
	PoloAtivoText  string
	Notes          string
	NumeroProcesso string
	DataProtocolo  string
	StatusProcesso string
	DataMatricula  string
	Curso          string
}

// FormFromCase prefills the edit form from a stored case.
func FormFromCase(c domain.Case) CaseForm {
	return CaseForm{
		DebtorName:     c.DebtorName,
		InternalID:     c.InternalID,
		CPF:            format.CPF(c.CPF),
		WhatsApp:       c.WhatsApp,
		Email:          c.Email,
		ValueCausa:     c.ValueCausa.StringFixed(2),
		PoloAtivoText:  c.PoloAtivoText,
		Notes:          c.Notes,
		NumeroProcesso: c.NumeroProcesso,
		DataProtocolo:  c.DataProtocolo,
		StatusProcesso: c.StatusProcesso,
		DataMatricula:  c.DataMatricula,
		Curso:          c.Curso,
	}
}

// Payload validates the form and builds the request body. Optional contact
// and date fields are left out when blank; free text fields become "".
func (f CaseForm) Payload() (dto.CaseRequestDTO, error) {
	var req dto.CaseRequestDTO

	req.DebtorName = strings.TrimSpace(f.DebtorName)
	if req.DebtorName == "" {
		return req, ErrDebtorRequired
	}
	req.StatusProcesso = strings.TrimSpace(f.StatusProcesso)
	if req.StatusProcesso == "" {
		return req, ErrStatusRequired
	}

	value, err := format.ParseAmount(f.ValueCausa)
	if err != nil {
		return req, fmt.Errorf("%w: %q", ErrInvalidValue, f.ValueCausa)
	}
	req.ValueCausa = value.InexactFloat64()

	req.InternalID = strings.TrimSpace(f.InternalID)
	req.PoloAtivoText = strings.TrimSpace(f.PoloAtivoText)
	req.Notes = strings.TrimSpace(f.Notes)
	req.NumeroProcesso = strings.TrimSpace(f.NumeroProcesso)
	req.Curso = strings.TrimSpace(f.Curso)

	req.CPF = optional(format.UnformatCPF(f.CPF))
	req.WhatsApp = optional(f.WhatsApp)
	req.Email = optional(f.Email)

	if req.DataProtocolo, err = optionalDate(f.DataProtocolo); err != nil {
		return req, fmt.Errorf("data_protocolo: %w", err)
	}
	if req.DataMatricula, err = optionalDate(f.DataMatricula); err != nil {
		return req, fmt.Errorf("data_matricula: %w", err)
	}
	return req, nil
}

// BulkFields are the attributes a bulk update may overwrite.
type BulkFields struct {
	StatusProcesso string
	PoloAtivoText  string
	Curso          string
	DataMatricula  string
}

// Updates returns only the fields that were filled in.
func (b BulkFields) Updates() (map[string]string, error) {
	updates := make(map[string]string)
	put := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			updates[key] = v
		}
	}
	put("status_processo", b.StatusProcesso)
	put("polo_ativo_text", b.PoloAtivoText)
	put("curso", b.Curso)

	date, err := optionalDate(b.DataMatricula)
	if err != nil {
		return nil, fmt.Errorf("data_matricula: %w", err)
	}
	if date != nil {
		updates["data_matricula"] = *date
	}
	return updates, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func optionalDate(v string) (*string, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	date, err := format.NormalizeDate(v)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
