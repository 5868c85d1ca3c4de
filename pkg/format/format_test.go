package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDates(t *testing.T) {
	assert.Equal(t, "31/01/2024", DateBR("2024-01-31"))
	assert.Equal(t, "", DateBR(""))
	assert.Equal(t, "2024-01", DateBR("2024-01"))
	assert.Equal(t, "2024-01-31", DateISO("31/01/2024"))
	assert.Equal(t, "", DateISO(""))
}

func TestBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{100, "R$ 100,00"},
		{1234.5, "R$ 1.234,50"},
		{1234567.891, "R$ 1.234.567,89"},
		{-50.25, "-R$ 50,25"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, BRL(tt.in))
		})
	}
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "100.00", Fixed2(100))
	assert.Equal(t, "0.10", Fixed2(0.1))
	assert.Equal(t, "1234.57", Fixed2(1234.567))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1200", want: "1200"},
		{in: "1200.50", want: "1200.5"},
		{in: "1200,50", want: "1200.5"},
		{in: "1.200,50", want: "1200.5"},
		{in: "R$ 99,90", want: "99.9"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1,234.56", wantErr: true},
		{in: "1,2,3", wantErr: true},
		{in: "1.234.567,8", want: "1234567.8"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", CPF("12345678901"))
	assert.Equal(t, "123.456.789-01", CPF("123.456.789-0199"))
	assert.Equal(t, "123.45", CPF("12345"))
	assert.Equal(t, "12345678901", UnformatCPF("123.456.789-01"))
	assert.Equal(t, "", CPF(""))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-02-29", want: "2024-02-29"},
		{in: "29/02/2024", want: "2024-02-29"},
		{in: " 01/12/2023 ", want: "2023-12-01"},
		{in: "31/02/2024", wantErr: true},
		{in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
