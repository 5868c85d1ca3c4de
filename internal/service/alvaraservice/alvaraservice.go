package alvaraservice

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
)

const (
	OrderRecent = "recent"
	OrderAlpha  = "alpha"
	OrderMin    = "min"
	OrderMax    = "max"
)

var ErrUnknownOrder = errors.New("order must be one of recent, alpha, min, max")

type Repo interface {
	Pending(ctx context.Context) ([]domain.PendingAlvara, error)
	Update(ctx context.Context, id string, req dto.AlvaraRequestDTO) (*domain.Alvara, error)
}

type Filter struct {
	Debtor      string
	Process     string
	Beneficiary string
	Order       string
}

type Service struct {
	alvaraRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		alvaraRepo: repo,
	}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]domain.PendingAlvara, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	rows, err := s.alvaraRepo.Pending(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(rows, filter), nil
}

// MarkPaid settles the payout and returns the refreshed pending list.
func (s *Service) MarkPaid(ctx context.Context, row domain.PendingAlvara, filter Filter) ([]domain.PendingAlvara, error) {
	req := dto.AlvaraRequestDTO{
		DataAlvara:         row.Data,
		ValorAlvara:        row.Valor.InexactFloat64(),
		BeneficiarioCodigo: row.Beneficiario,
		Observacoes:        row.Observacoes,
		StatusAlvara:       domain.AlvaraPaid,
	}
	if _, err := s.alvaraRepo.Update(ctx, row.AlvaraID, req); err != nil {
		return nil, err
	}
	zap.L().Info("alvara marked as paid", zap.String("alvara_id", row.AlvaraID), zap.String("case_id", row.CaseID))
	return s.List(ctx, filter)
}

// Find returns the pending row with the given alvará id.
func Find(rows []domain.PendingAlvara, alvaraID string) (domain.PendingAlvara, bool) {
	for _, row := range rows {
		if row.AlvaraID == alvaraID {
			return row, true
		}
	}
	return domain.PendingAlvara{}, false
}

// Apply filters and orders rows without touching the input slice.
func Apply(rows []domain.PendingAlvara, filter Filter) []domain.PendingAlvara {
	debtor := strings.ToLower(strings.TrimSpace(filter.Debtor))
	process := strings.TrimSpace(filter.Process)
	beneficiary := strings.TrimSpace(filter.Beneficiary)

	result := make([]domain.PendingAlvara, 0, len(rows))
	for _, row := range rows {
		if debtor != "" && !strings.Contains(strings.ToLower(row.Devedor), debtor) {
			continue
		}
		if process != "" && !strings.Contains(row.NumeroProcesso, process) {
			continue
		}
		if beneficiary != "" && beneficiary != "all" && row.Beneficiario != beneficiary {
			continue
		}
		result = append(result, row)
	}

	switch filter.Order {
	case OrderAlpha:
		names := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
		sort.SliceStable(result, func(i, j int) bool {
			return names.CompareString(result[i].Devedor, result[j].Devedor) < 0
		})
	case OrderMin:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Valor.LessThan(result[j].Valor)
		})
	case OrderMax:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Valor.GreaterThan(result[j].Valor)
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Data > result[j].Data
		})
	}
	return result
}

func (f Filter) validate() error {
	switch f.Order {
	case "", OrderRecent, OrderAlpha, OrderMin, OrderMax:
		return nil
	default:
		return ErrUnknownOrder
	}
}
