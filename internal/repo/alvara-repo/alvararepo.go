package alvararepo

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

func (repo *Repository) Create(ctx context.Context, req dto.AlvaraRequestDTO) (*domain.Alvara, error) {
	var alvara domain.Alvara
	if err := repo.db.Do(ctx, http.MethodPost, "/alvaras", nil, req, &alvara); err != nil {
		zap.L().Error("can't create alvara", zap.String("case_id", req.CaseID), zap.Error(err))
		return nil, err
	}
	return &alvara, nil
}

func (repo *Repository) Update(ctx context.Context, id string, req dto.AlvaraRequestDTO) (*domain.Alvara, error) {
	var alvara domain.Alvara
	if err := repo.db.Do(ctx, http.MethodPut, "/alvaras/"+url.PathEscape(id), nil, req, &alvara); err != nil {
		zap.L().Error("can't update alvara", zap.String("alvara_id", id), zap.Error(err))
		return nil, err
	}
	return &alvara, nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	if err := repo.db.Do(ctx, http.MethodDelete, "/alvaras/"+url.PathEscape(id), nil, nil, nil); err != nil {
		zap.L().Error("can't delete alvara", zap.String("alvara_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Pending(ctx context.Context) ([]domain.PendingAlvara, error) {
	var rows []domain.PendingAlvara
	if err := repo.db.Do(ctx, http.MethodGet, "/alvaras/pendentes", nil, nil, &rows); err != nil {
		zap.L().Error("can't list pending alvaras", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
