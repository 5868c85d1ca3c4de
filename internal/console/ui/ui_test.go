package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/acordos/internal/remote"
)

func NewMock(input string) (*Terminal, *bytes.Buffer, *bytes.Buffer) {
	var out, notices bytes.Buffer
	return New(strings.NewReader(input), &out, &notices), &out, &notices
}

func TestAsk(t *testing.T) {
	term, out, _ := NewMock("  maria  \nlast")

	got, err := term.Ask("Debtor")
	require.NoError(t, err)
	assert.Equal(t, "maria", got)
	assert.Equal(t, "Debtor: ", out.String())

	got, err = term.Ask("Next")
	require.NoError(t, err)
	assert.Equal(t, "last", got, "line without newline at EOF")

	_, err = term.Ask("Gone")
	assert.Error(t, err)
}

func TestAskDefault(t *testing.T) {
	term, out, _ := NewMock("\n-\nnew\n")

	got, err := term.AskDefault("Curso", "Direito")
	require.NoError(t, err)
	assert.Equal(t, "Direito", got)
	assert.Contains(t, out.String(), "Curso [Direito]: ")

	got, err = term.AskDefault("Curso", "Direito")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = term.AskDefault("Curso", "")
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"sim\n", true},
		{"\n", false},
		{"no\n", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			term, _, _ := NewMock(tt.input)
			got, err := term.Confirm("Delete?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAskBool(t *testing.T) {
	term, out, _ := NewMock("\nsim\nno\nperhaps\n")

	got, err := term.AskBool("Has entry", true)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Contains(t, out.String(), "Has entry (yes/no) [yes]: ")

	got, err = term.AskBool("Has entry", false)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = term.AskBool("Has entry", true)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = term.AskBool("Has entry", false)
	assert.ErrorIs(t, err, ErrNoChoice)
}

func TestChoose(t *testing.T) {
	options := []string{"recent", "alpha", "min", "max"}

	term, out, _ := NewMock("2\nMAX\n9\n")
	got, err := term.Choose("Order", options)
	require.NoError(t, err)
	assert.Equal(t, "alpha", got)
	assert.Contains(t, out.String(), "  1) recent\n")

	got, err = term.Choose("Order", options)
	require.NoError(t, err)
	assert.Equal(t, "max", got)

	_, err = term.Choose("Order", options)
	assert.ErrorIs(t, err, ErrNoChoice)
}

func TestPassword(t *testing.T) {
	origRead, origTerm := readPassword, isTerminal
	defer func() { readPassword, isTerminal = origRead, origTerm }()

	t.Run("Terminal input is not echoed", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

		var out bytes.Buffer
		term := New(os.Stdin, &out, io.Discard)
		got, err := term.Password("Password")
		require.NoError(t, err)
		assert.Equal(t, "s3cret", got)
		assert.Equal(t, "Password: \n", out.String())
	})

	t.Run("Terminal read failure", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return nil, errors.New("tty closed") }

		term := New(os.Stdin, io.Discard, io.Discard)
		_, err := term.Password("Password")
		assert.EqualError(t, err, "tty closed")
	})

	t.Run("Piped input", func(t *testing.T) {
		isTerminal = func(int) bool { return true }

		term, _, _ := NewMock("piped\n")
		got, err := term.Password("Password")
		require.NoError(t, err)
		assert.Equal(t, "piped", got)
	})
}

func TestRetry(t *testing.T) {
	t.Run("Keeps going until success", func(t *testing.T) {
		term, _, notices := NewMock("y\n")
		calls := 0
		err := term.Retry(func() error {
			calls++
			if calls == 1 {
				return &remote.APIError{Status: 400, Detail: "CPF inválido"}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Contains(t, notices.String(), "CPF inválido")
	})

	t.Run("User gives up", func(t *testing.T) {
		term, _, _ := NewMock("n\n")
		err := term.Retry(func() error { return errors.New("bad value") })
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("Expired session stops at once", func(t *testing.T) {
		term, _, notices := NewMock("y\n")
		calls := 0
		err := term.Retry(func() error {
			calls++
			return remote.ErrUnauthorized
		})
		assert.ErrorIs(t, err, remote.ErrUnauthorized)
		assert.Equal(t, 1, calls)
		assert.Empty(t, notices.String())
	})
}

func TestTable(t *testing.T) {
	term, out, _ := NewMock("")
	err := term.Table([]string{"ID", "Debtor", "Status"}, [][]string{
		{"1", "Maria Silva", "Acordo"},
		{"22", "João"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID  Debtor       Status", lines[0])
	assert.Equal(t, "1   Maria Silva  Acordo", lines[1])
	assert.Equal(t, "22  João", strings.TrimRight(lines[2], " "))
}

func TestFrameKeepsColumnOrder(t *testing.T) {
	term, out, _ := NewMock("")
	err := term.Frame([]string{"Nome", "Valor", "CPF"}, []map[string]any{
		{"Nome": "Maria", "Valor": 1500.5, "CPF": nil},
		{"Nome": "João", "Valor": "NaN"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Nome"))
	assert.Less(t, strings.Index(lines[0], "Valor"), strings.Index(lines[0], "CPF"))
	assert.Contains(t, lines[1], "1500.5")
}

func TestFrameEmpty(t *testing.T) {
	term, out, _ := NewMock("")
	require.NoError(t, term.Frame([]string{"Nome"}, nil))
	assert.Equal(t, "(no rows)\n", out.String())
}

func TestBarLength(t *testing.T) {
	max := decimal.NewFromInt(1000)
	assert.Equal(t, 40, BarLength(max, max, 40))
	assert.Equal(t, 20, BarLength(decimal.NewFromInt(500), max, 40))
	assert.Equal(t, 1, BarLength(decimal.NewFromInt(1), max, 40))
	assert.Equal(t, 0, BarLength(decimal.Zero, max, 40))
	assert.Equal(t, 0, BarLength(decimal.NewFromInt(5), decimal.Zero, 40))
}

func TestChart(t *testing.T) {
	term, out, _ := NewMock("")
	err := term.Chart([]BarGroup{
		{Title: "2024-01", Bars: []Bar{
			{Label: "31", Value: decimal.NewFromInt(200)},
			{Label: "14", Value: decimal.NewFromInt(100)},
		}},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2024-01\n")
	assert.Contains(t, out.String(), "|"+strings.Repeat("#", ChartWidth)+" ")
	assert.Contains(t, out.String(), "R$ 100,00")
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Unauthorized", remote.ErrUnauthorized, msgSessionExpired},
		{"Backend detail", fmt.Errorf("create: %w", &remote.APIError{Status: 400, Detail: "CPF já cadastrado"}), "CPF já cadastrado"},
		{"Network", fmt.Errorf("%w: dial tcp", remote.ErrNetwork), msgUnavailable},
		{"Bad body", remote.ErrBadResponse, msgUnavailable},
		{"Local validation", errors.New("value_causa must be a number"), "value_causa must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	term, _, notices := NewMock("")
	term.Error(&remote.APIError{Status: 422, Detail: "invalid date"})
	term.Error(ErrCancelled)

	lines := strings.Split(strings.TrimSpace(notices.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ERR")
	assert.Contains(t, lines[0], "invalid date")
	assert.Contains(t, lines[1], "WRN")
	assert.Contains(t, lines[1], "Nothing changed")
}
