package receiptservice

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/remote"
	"github.com/GlebRadaev/acordos/pkg/format"
)

var fixedNow = time.Date(2024, 5, 20, 15, 4, 5, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	service := New(repo)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, repo
}

func report() *domain.ReceiptReport {
	return &domain.ReceiptReport{
		Receipts: []domain.Receipt{
			{Date: "2024-05-02", Debtor: "Maria", NumeroProcesso: "0001", Type: "Parcela", Value: decimal.NewFromInt(1200), Beneficiario: "31"},
			{Date: "2024-05-03", Debtor: `João "Jota"`, NumeroProcesso: "0002", Type: "Alvará", Value: decimal.RequireFromString("300.5"), Beneficiario: "14", Observacoes: "levantado, conta 2"},
		},
	}
}

func TestCSV(t *testing.T) {
	content, err := CSV(report())
	require.NoError(t, err)

	lines := strings.Split(string(content), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Data","Devedor","Nº Processo","Tipo","Valor","Beneficiário","Observações"`, lines[0])
	assert.Equal(t, `"02/05/2024","Maria","0001","Parcela","1200.00","31",""`, lines[1])
	assert.Equal(t, `"03/05/2024","João ""Jota""","0002","Alvará","300.50","14","levantado, conta 2"`, lines[2])
}

func TestCSVEmpty(t *testing.T) {
	_, err := CSV(&domain.ReceiptReport{})
	assert.ErrorIs(t, err, ErrNothingToExport)

	_, err = CSV(nil)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "recebimentos_2024-05-20.csv", CSVFilename(fixedNow))
	assert.Equal(t, "recebimentos_2024-05-20.pdf", PDFFilename(fixedNow))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      dto.ReceiptFilterDTO
		want    dto.ReceiptFilterDTO
		wantErr error
	}{
		{
			name: "Month by default",
			in:   dto.ReceiptFilterDTO{},
			want: dto.ReceiptFilterDTO{Preset: "month"},
		},
		{
			name: "Custom range in Brazilian format",
			in:   dto.ReceiptFilterDTO{Preset: dto.PresetCustom, StartDate: "01/01/2024", EndDate: "31/01/2024", Type: "alvara"},
			want: dto.ReceiptFilterDTO{Preset: dto.PresetCustom, StartDate: "2024-01-01", EndDate: "2024-01-31", Type: "alvara"},
		},
		{
			name:    "Custom range without dates",
			in:      dto.ReceiptFilterDTO{Preset: dto.PresetCustom, StartDate: "2024-01-01"},
			wantErr: ErrRangeRequired,
		},
		{
			name:    "Reversed range",
			in:      dto.ReceiptFilterDTO{Preset: dto.PresetCustom, StartDate: "2024-02-01", EndDate: "2024-01-01"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "Bad date",
			in:      dto.ReceiptFilterDTO{Preset: dto.PresetCustom, StartDate: "x", EndDate: "2024-01-01"},
			wantErr: format.ErrInvalidDate,
		},
		{
			name:    "Unknown preset",
			in:      dto.ReceiptFilterDTO{Preset: "decade"},
			wantErr: ErrUnknownPreset,
		},
		{
			name:    "Unknown beneficiary",
			in:      dto.ReceiptFilterDTO{Preset: "year", Beneficiario: "99"},
			wantErr: ErrUnknownFilter,
		},
		{
			name:    "Unknown type",
			in:      dto.ReceiptFilterDTO{Preset: "year", Type: "multa"},
			wantErr: ErrUnknownFilter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	repo.EXPECT().Report(ctx, dto.ReceiptFilterDTO{Preset: "week", Beneficiario: "31"}).Return(report(), nil)
	got, err := service.Load(ctx, dto.ReceiptFilterDTO{Preset: "week", Beneficiario: "31"})
	require.NoError(t, err)
	assert.Len(t, got.Receipts, 2)

	_, err = service.Load(ctx, dto.ReceiptFilterDTO{Preset: "fortnight"})
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestExportCSV(t *testing.T) {
	service, _ := NewMock(t)
	dir := t.TempDir()

	path, err := service.ExportCSV(report(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recebimentos_2024-05-20.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(string(content), "\n"), 3)

	_, err = service.ExportCSV(&domain.ReceiptReport{}, dir)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Both artifacts", func(t *testing.T) {
		service, repo := NewMock(t)
		dir := t.TempDir()
		repo.EXPECT().PDF(gomock.Any(), dto.ReceiptFilterDTO{Preset: "month"}).Return([]byte("%PDF-1.4"), nil)

		out, err := service.ExportAll(ctx, dto.ReceiptFilterDTO{}, report(), dir)
		require.NoError(t, err)

		pdf, err := os.ReadFile(out.PDF)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(pdf))
		assert.FileExists(t, out.CSV)
	})

	t.Run("PDF failure is reported", func(t *testing.T) {
		service, repo := NewMock(t)
		dir := t.TempDir()
		repo.EXPECT().PDF(gomock.Any(), gomock.Any()).Return(nil, remote.ErrUnauthorized)

		_, err := service.ExportAll(ctx, dto.ReceiptFilterDTO{Preset: "day"}, report(), dir)
		assert.ErrorIs(t, err, remote.ErrUnauthorized)
		assert.FileExists(t, filepath.Join(dir, "recebimentos_2024-05-20.csv"))
	})

	t.Run("Empty report fails the export", func(t *testing.T) {
		service, repo := NewMock(t)
		dir := t.TempDir()
		repo.EXPECT().PDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil).AnyTimes()

		_, err := service.ExportAll(ctx, dto.ReceiptFilterDTO{}, &domain.ReceiptReport{}, dir)
		assert.ErrorIs(t, err, ErrNothingToExport)
	})
}
