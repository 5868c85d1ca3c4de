package caserepo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

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

func (repo *Repository) List(ctx context.Context, filter dto.CaseFilterDTO) (*domain.CasePage, error) {
	var page domain.CasePage
	if err := repo.db.Do(ctx, http.MethodGet, "/cases", listQuery(filter), nil, &page); err != nil {
		zap.L().Error("can't list cases", zap.Error(err))
		return nil, err
	}
	return &page, nil
}

func (repo *Repository) Detail(ctx context.Context, id string) (*domain.CaseDetail, error) {
	var detail domain.CaseDetail
	if err := repo.db.Do(ctx, http.MethodGet, "/cases/"+url.PathEscape(id), nil, nil, &detail); err != nil {
		zap.L().Error("can't load case", zap.String("case_id", id), zap.Error(err))
		return nil, err
	}
	return &detail, nil
}

func (repo *Repository) Create(ctx context.Context, req dto.CaseRequestDTO) (*domain.Case, error) {
	var c domain.Case
	if err := repo.db.Do(ctx, http.MethodPost, "/cases", nil, req, &c); err != nil {
		zap.L().Error("can't create case", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (repo *Repository) Update(ctx context.Context, id string, req dto.CaseRequestDTO) (*domain.Case, error) {
	var c domain.Case
	if err := repo.db.Do(ctx, http.MethodPut, "/cases/"+url.PathEscape(id), nil, req, &c); err != nil {
		zap.L().Error("can't update case", zap.String("case_id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	if err := repo.db.Do(ctx, http.MethodDelete, "/cases/"+url.PathEscape(id), nil, nil, nil); err != nil {
		zap.L().Error("can't delete case", zap.String("case_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) BulkUpdate(ctx context.Context, req dto.BulkUpdateRequestDTO) (*dto.BulkResponseDTO, error) {
	var resp dto.BulkResponseDTO
	if err := repo.db.Do(ctx, http.MethodPost, "/cases/bulk-update", nil, req, &resp); err != nil {
		zap.L().Error("can't bulk update cases", zap.Int("count", len(req.CaseIDs)), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (repo *Repository) BulkDelete(ctx context.Context, ids []string) (*dto.BulkResponseDTO, error) {
	var resp dto.BulkResponseDTO
	if err := repo.db.Do(ctx, http.MethodPost, "/cases/bulk-delete", nil, dto.BulkDeleteRequestDTO{CaseIDs: ids}, &resp); err != nil {
		zap.L().Error("can't bulk delete cases", zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

// listQuery drops empty and "all" filters; the backend treats them as absent.
func listQuery(f dto.CaseFilterDTO) url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" && value != "all" {
			q.Set(key, value)
		}
	}
	set("search", f.Search)
	set("status_acordo", f.StatusAcordo)
	set("beneficiario", f.Beneficiario)
	set("status_processo", f.StatusProcesso)
	set("sort", f.Sort)
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}
