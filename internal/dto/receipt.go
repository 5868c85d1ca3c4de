package dto

import "net/url"

const PresetCustom = "custom"

type ReceiptFilterDTO struct {
	Preset       string
	StartDate    string
	EndDate      string
	Beneficiario string
	Type         string
}

// Query encodes the filter; custom ranges send dates instead of a preset.
func (f ReceiptFilterDTO) Query() url.Values {
	q := url.Values{}
	if f.Preset == PresetCustom {
		if f.StartDate != "" {
			q.Set("start_date", f.StartDate)
		}
		if f.EndDate != "" {
			q.Set("end_date", f.EndDate)
		}
	} else if f.Preset != "" {
		q.Set("preset", f.Preset)
	}
	if f.Beneficiario != "" && f.Beneficiario != "all" {
		q.Set("beneficiario", f.Beneficiario)
	}
	if f.Type != "" && f.Type != "all" {
		q.Set("type", f.Type)
	}
	return q
}
