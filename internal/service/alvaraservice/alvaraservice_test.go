package alvaraservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/remote"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func rows() []domain.PendingAlvara {
	return []domain.PendingAlvara{
		{AlvaraID: "v1", Devedor: "Maria Souza", NumeroProcesso: "0001-11", Data: "2024-03-01", Valor: decimal.NewFromInt(500), Beneficiario: "31"},
		{AlvaraID: "v2", Devedor: "ana lima", NumeroProcesso: "0002-22", Data: "2024-05-10", Valor: decimal.NewFromInt(150), Beneficiario: "14"},
		{AlvaraID: "v3", Devedor: "Bruno Alves", NumeroProcesso: "0003-11", Data: "2024-04-20", Valor: decimal.NewFromInt(900), Beneficiario: "31"},
	}
}

func ids(list []domain.PendingAlvara) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.AlvaraID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "Default is most recent first", filter: Filter{}, want: []string{"v2", "v3", "v1"}},
		{name: "Alphabetical ignores case", filter: Filter{Order: OrderAlpha}, want: []string{"v2", "v3", "v1"}},
		{name: "Smallest value first", filter: Filter{Order: OrderMin}, want: []string{"v2", "v1", "v3"}},
		{name: "Largest value first", filter: Filter{Order: OrderMax}, want: []string{"v3", "v1", "v2"}},
		{name: "Debtor substring case insensitive", filter: Filter{Debtor: "SOUZA"}, want: []string{"v1"}},
		{name: "Process substring", filter: Filter{Process: "-11"}, want: []string{"v3", "v1"}},
		{name: "Beneficiary", filter: Filter{Beneficiary: "14"}, want: []string{"v2"}},
		{name: "All beneficiaries", filter: Filter{Beneficiary: "all", Order: OrderMin}, want: []string{"v2", "v1", "v3"}},
		{name: "Nothing matches", filter: Filter{Debtor: "zzz"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := rows()
			assert.Equal(t, tt.want, ids(Apply(input, tt.filter)))
			assert.Equal(t, []string{"v1", "v2", "v3"}, ids(input))
		})
	}
}

func TestApplyAlphabeticalPortuguese(t *testing.T) {
	input := []domain.PendingAlvara{
		{AlvaraID: "b", Devedor: "Bruno"},
		{AlvaraID: "a", Devedor: "Ângela"},
		{AlvaraID: "z", Devedor: "Zé"},
		{AlvaraID: "e", Devedor: "élida"},
	}

	assert.Equal(t, []string{"a", "b", "e", "z"}, ids(Apply(input, Filter{Order: OrderAlpha})))
}

func TestFind(t *testing.T) {
	row, ok := Find(rows(), "v3")
	assert.True(t, ok)
	assert.Equal(t, "Bruno Alves", row.Devedor)

	_, ok = Find(rows(), "nope")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().Pending(ctx).Return(rows(), nil)
	list, err := service.List(ctx, Filter{Order: OrderMax})
	require.NoError(t, err)
	assert.Equal(t, []string{"v3", "v1", "v2"}, ids(list))

	_, err = service.List(ctx, Filter{Order: "oldest"})
	assert.ErrorIs(t, err, ErrUnknownOrder)

	repo.EXPECT().Pending(ctx).Return(nil, remote.ErrUnauthorized)
	_, err = service.List(ctx, Filter{})
	assert.ErrorIs(t, err, remote.ErrUnauthorized)
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)
	row := rows()[0]
	row.Observacoes = "levantado"

	gomock.InOrder(
		repo.EXPECT().Update(ctx, "v1", dto.AlvaraRequestDTO{
			DataAlvara:         "2024-03-01",
			ValorAlvara:        500,
			BeneficiarioCodigo: "31",
			Observacoes:        "levantado",
			StatusAlvara:       domain.AlvaraPaid,
		}).Return(&domain.Alvara{ID: "v1", StatusAlvara: domain.AlvaraPaid}, nil),
		repo.EXPECT().Pending(ctx).Return(rows()[1:], nil),
	)

	list, err := service.MarkPaid(ctx, row, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"v2", "v3"}, ids(list))
}

func TestMarkPaidFailureSkipsRefresh(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().Update(ctx, "v1", gomock.Any()).Return(nil, &remote.APIError{Status: 404, Detail: "Alvará not found"})

	_, err := service.MarkPaid(ctx, rows()[0], Filter{})
	assert.EqualError(t, err, "Alvará not found")
}
