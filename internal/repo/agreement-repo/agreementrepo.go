package agreementrepo

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/remote"
)

type Repository struct {
	db remote.Database
}

func New(db remote.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, req dto.AgreementRequestDTO) (*domain.Agreement, error) {
	var agreement domain.Agreement
	if err := repo.db.Do(ctx, http.MethodPost, "/agreements", nil, req, &agreement); err != nil {
		zap.L().Error("can't create agreement", zap.String("case_id", req.CaseID), zap.Error(err))
		return nil, err
	}
	return &agreement, nil
}

func (repo *Repository) Update(ctx context.Context, id string, req dto.AgreementRequestDTO) (*domain.Agreement, error) {
	var agreement domain.Agreement
	if err := repo.db.Do(ctx, http.MethodPut, "/agreements/"+url.PathEscape(id), nil, req, &agreement); err != nil {
		zap.L().Error("can't update agreement", zap.String("agreement_id", id), zap.Error(err))
		return nil, err
	}
	return &agreement, nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	if err := repo.db.Do(ctx, http.MethodDelete, "/agreements/"+url.PathEscape(id), nil, nil, nil); err != nil {
		zap.L().Error("can't delete agreement", zap.String("agreement_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) UpdateInstallment(ctx context.Context, id string, req dto.InstallmentUpdateDTO) (*domain.Installment, error) {
	var inst domain.Installment
	if err := repo.db.Do(ctx, http.MethodPut, "/installments/"+url.PathEscape(id), nil, req, &inst); err != nil {
		zap.L().Error("can't update installment", zap.String("installment_id", id), zap.Error(err))
		return nil, err
	}
	return &inst, nil
}
