package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{name: "Formatted", cpf: "123.456.789-09", want: true},
		{name: "Digits only", cpf: "52998224725", want: true},
		{name: "Zero check digit", cpf: "00000000191", want: true},
		{name: "Wrong first digit", cpf: "123.456.789-19", want: false},
		{name: "Wrong second digit", cpf: "12345678901", want: false},
		{name: "Repeated digits", cpf: "111.111.111-11", want: false},
		{name: "Too short", cpf: "1234567890", want: false},
		{name: "Letters", cpf: "123.456.789-0a", want: false},
		{name: "Empty", cpf: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCPF(tt.cpf))
		})
	}
}
