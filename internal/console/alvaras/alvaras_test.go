package alvaras

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/remote"
	"github.com/GlebRadaev/acordos/internal/service/alvaraservice"
)

func NewMock(t *testing.T, input string) (*AlvarasHandler, *MockService, *bytes.Buffer, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	var out, notices bytes.Buffer
	handler := New(service, ui.New(strings.NewReader(input), &out, &notices))
	defer ctrl.Finish()
	return handler, service, &out, &notices
}

func newCmd(flags map[string]string) *cobra.Command {
	cmd := &cobra.Command{}
	fs := cmd.Flags()
	for _, name := range []string{"debtor", "process", "beneficiario", "order"} {
		fs.String(name, "", "")
	}
	for k, v := range flags {
		_ = fs.Set(k, v)
	}
	cmd.SetContext(context.Background())
	return cmd
}

var pending = []domain.PendingAlvara{
	{AlvaraID: "a1", CaseID: "c1", Devedor: "Maria", NumeroProcesso: "0001", Data: "2024-03-01", Valor: decimal.NewFromInt(500), Beneficiario: "31"},
	{AlvaraID: "a2", CaseID: "c2", Devedor: "José", NumeroProcesso: "0002", Data: "2024-04-01", Valor: decimal.NewFromInt(250), Beneficiario: "14"},
}

func TestList(t *testing.T) {
	ctx := context.Background()
	handler, service, out, _ := NewMock(t, "")

	filter := alvaraservice.Filter{Debtor: "ma", Order: alvaraservice.OrderMax}
	service.EXPECT().List(ctx, filter).Return(pending, nil)

	require.NoError(t, handler.List(newCmd(map[string]string{"debtor": "ma", "order": "max"}), nil))
	assert.Contains(t, out.String(), "01/03/2024")
	assert.Contains(t, out.String(), "2 pending, R$ 750,00 in total")
}

func TestListEmptyAndInvalid(t *testing.T) {
	ctx := context.Background()
	handler, service, out, _ := NewMock(t, "")

	service.EXPECT().List(ctx, alvaraservice.Filter{}).Return(nil, nil)
	require.NoError(t, handler.List(newCmd(nil), nil))
	assert.Equal(t, "No pending alvarás\n", out.String())

	service.EXPECT().List(ctx, alvaraservice.Filter{Order: "size"}).Return(nil, alvaraservice.ErrUnknownOrder)
	assert.ErrorIs(t, handler.List(newCmd(map[string]string{"order": "size"}), nil), alvaraservice.ErrUnknownOrder)
}

func TestPay(t *testing.T) {
	ctx := context.Background()
	filter := alvaraservice.Filter{Beneficiary: "31"}

	tests := []struct {
		name        string
		input       string
		id          string
		prepareMock func(service *MockService)
		wantErr     error
	}{
		{
			name:  "Confirmed",
			input: "y\n",
			id:    "a1",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(ctx, alvaraservice.Filter{}).Return(pending, nil)
				service.EXPECT().MarkPaid(ctx, pending[0], filter).Return(pending[1:], nil)
			},
		},
		{
			name:  "Declined",
			input: "n\n",
			id:    "a1",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(ctx, alvaraservice.Filter{}).Return(pending, nil)
			},
			wantErr: ui.ErrCancelled,
		},
		{
			name: "Not pending",
			id:   "a9",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(ctx, alvaraservice.Filter{}).Return(pending, nil)
			},
			wantErr: ErrNotPending,
		},
		{
			name:  "Backend failure",
			input: "y\n",
			id:    "a2",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(ctx, alvaraservice.Filter{}).Return(pending, nil)
				service.EXPECT().MarkPaid(ctx, pending[1], filter).Return(nil, remote.ErrNetwork)
			},
			wantErr: remote.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, out, notices := NewMock(t, tt.input)
			tt.prepareMock(service)

			err := handler.Pay(newCmd(map[string]string{"beneficiario": "31"}), []string{tt.id})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, notices.String(), "Alvará marked as paid")
			assert.Contains(t, out.String(), "1 pending, R$ 250,00 in total")
		})
	}
}
