package importservice

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Ignore is the mapping choice that leaves a field unmapped.
const Ignore = "ignore"

type Section struct {
	Key    string
	Title  string
	Fields []string
}

var Sections = []Section{
	{
		Key:   "case",
		Title: "Case",
		Fields: []string{
			"debtor_name", "internal_id", "value_causa", "polo_ativo_text", "notes",
			"numero_processo", "data_protocolo", "status_processo", "data_matricula",
			"cpf", "whatsapp", "email", "curso",
		},
	},
	{
		Key:   "agreement",
		Title: "Agreement",
		Fields: []string{
			"total_value", "installments_count", "installment_value", "first_due_date",
			"has_entry", "entry_value", "entry_via_alvara", "entry_date", "total_received_import",
		},
	},
	{
		Key:    "installment",
		Title:  "Installment",
		Fields: []string{"number", "due_date", "paid_date", "paid_value", "is_entry"},
	},
	{
		Key:    "alvara",
		Title:  "Alvará",
		Fields: []string{"data_alvara", "valor_alvara", "beneficiario_codigo", "observacoes", "status_alvara"},
	},
}

func section(key string) (Section, bool) {
	for _, s := range Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

func hasField(s Section, field string) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// normalizeName folds a column header or field name for loose comparison:
// lower case, accents removed, separators dropped.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
