package caseservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
)

var (
	ErrDebtorRequired  = errors.New("debtor name is required")
	ErrStatusRequired  = errors.New("process status is required")
	ErrInvalidValue    = errors.New("value of the claim must be a number")
	ErrEmptySelection  = errors.New("no cases selected")
	ErrEmptyBulkUpdate = errors.New("fill in at least one field to update")
)

type Repo interface {
	List(ctx context.Context, filter dto.CaseFilterDTO) (*domain.CasePage, error)
	Detail(ctx context.Context, id string) (*domain.CaseDetail, error)
	Create(ctx context.Context, req dto.CaseRequestDTO) (*domain.Case, error)
	Update(ctx context.Context, id string, req dto.CaseRequestDTO) (*domain.Case, error)
	Delete(ctx context.Context, id string) error
	BulkUpdate(ctx context.Context, req dto.BulkUpdateRequestDTO) (*dto.BulkResponseDTO, error)
	BulkDelete(ctx context.Context, ids []string) (*dto.BulkResponseDTO, error)
}

type Service struct {
	caseRepo Repo
	pageSize int
}

func New(repo Repo, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{
		caseRepo: repo,
		pageSize: pageSize,
	}
}

func (s *Service) List(ctx context.Context, filter dto.CaseFilterDTO) (*domain.CasePage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = s.pageSize
	}
	return s.caseRepo.List(ctx, filter)
}

// Get returns the stored case, used to prefill the edit form.
func (s *Service) Get(ctx context.Context, id string) (*domain.Case, error) {
	detail, err := s.caseRepo.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	return &detail.Case, nil
}

func (s *Service) Create(ctx context.Context, form CaseForm) (*domain.Case, error) {
	req, err := form.Payload()
	if err != nil {
		return nil, err
	}
	c, err := s.caseRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	zap.L().Info("case created", zap.String("case_id", c.ID))
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, form CaseForm) (*domain.Case, error) {
	req, err := form.Payload()
	if err != nil {
		return nil, err
	}
	return s.caseRepo.Update(ctx, id, req)
}

// Delete removes the case with its agreement, installments and alvarás.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.caseRepo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("case deleted", zap.String("case_id", id))
	return nil
}

func (s *Service) BulkUpdate(ctx context.Context, ids []string, fields BulkFields) (*dto.BulkResponseDTO, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	updates, err := fields.Updates()
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, ErrEmptyBulkUpdate
	}
	return s.caseRepo.BulkUpdate(ctx, dto.BulkUpdateRequestDTO{CaseIDs: ids, Updates: updates})
}

func (s *Service) BulkDelete(ctx context.Context, ids []string) (*dto.BulkResponseDTO, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	resp, err := s.caseRepo.BulkDelete(ctx, ids)
	if err != nil {
		return nil, err
	}
	zap.L().Info("cases deleted", zap.Int("count", len(ids)))
	return resp, nil
}
