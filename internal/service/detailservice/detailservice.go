package detailservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
)

var (
	ErrInvalidTotal        = errors.New("total value must be a positive number")
	ErrInvalidCount        = errors.New("number of installments must be at least 1")
	ErrInvalidInstallment  = errors.New("installment value must be a positive number")
	ErrDueDateRequired     = errors.New("first due date is required")
	ErrInvalidEntry        = errors.New("entry value must be positive and below the total")
	ErrIncompletePayment   = errors.New("payment needs both date and value")
	ErrInvalidPayment      = errors.New("paid value must be a number")
	ErrInvalidAlvaraValue  = errors.New("alvará value must be a positive number")
	ErrInvalidBeneficiary  = errors.New("beneficiary must be 31 or 14")
	ErrInvalidAlvaraStatus = errors.New("unknown alvará status")
	ErrNoAgreement         = errors.New("case has no agreement")
)

type CaseRepo interface {
	Detail(ctx context.Context, id string) (*domain.CaseDetail, error)
	Delete(ctx context.Context, id string) error
}

type AgreementRepo interface {
	Create(ctx context.Context, req dto.AgreementRequestDTO) (*domain.Agreement, error)
	Update(ctx context.Context, id string, req dto.AgreementRequestDTO) (*domain.Agreement, error)
	Delete(ctx context.Context, id string) error
	UpdateInstallment(ctx context.Context, id string, req dto.InstallmentUpdateDTO) (*domain.Installment, error)
}

type AlvaraRepo interface {
	Create(ctx context.Context, req dto.AlvaraRequestDTO) (*domain.Alvara, error)
	Update(ctx context.Context, id string, req dto.AlvaraRequestDTO) (*domain.Alvara, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	caseRepo      CaseRepo
	agreementRepo AgreementRepo
	alvaraRepo    AlvaraRepo
}

func New(caseRepo CaseRepo, agreementRepo AgreementRepo, alvaraRepo AlvaraRepo) *Service {
	return &Service{
		caseRepo:      caseRepo,
		agreementRepo: agreementRepo,
		alvaraRepo:    alvaraRepo,
	}
}

func (s *Service) Load(ctx context.Context, caseID string) (*domain.CaseDetail, error) {
	return s.caseRepo.Detail(ctx, caseID)
}

func (s *Service) DeleteCase(ctx context.Context, caseID string) error {
	if err := s.caseRepo.Delete(ctx, caseID); err != nil {
		return err
	}
	zap.L().Info("case deleted", zap.String("case_id", caseID))
	return nil
}

func (s *Service) CreateAgreement(ctx context.Context, caseID string, form AgreementForm) (*domain.Agreement, error) {
	req, err := form.Autofill().Payload(caseID)
	if err != nil {
		return nil, err
	}
	agreement, err := s.agreementRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	zap.L().Info("agreement created", zap.String("case_id", caseID), zap.String("agreement_id", agreement.ID))
	return agreement, nil
}

func (s *Service) UpdateAgreement(ctx context.Context, caseID, agreementID string, form AgreementForm) (*domain.Agreement, error) {
	req, err := form.Autofill().Payload(caseID)
	if err != nil {
		return nil, err
	}
	return s.agreementRepo.Update(ctx, agreementID, req)
}

// DeleteAgreement also removes every installment of the agreement.
func (s *Service) DeleteAgreement(ctx context.Context, agreementID string) error {
	if err := s.agreementRepo.Delete(ctx, agreementID); err != nil {
		return err
	}
	zap.L().Info("agreement deleted", zap.String("agreement_id", agreementID))
	return nil
}

func (s *Service) UpdateInstallment(ctx context.Context, installmentID string, form PaymentForm) (*domain.Installment, error) {
	req, err := form.Payload()
	if err != nil {
		return nil, err
	}
	return s.agreementRepo.UpdateInstallment(ctx, installmentID, req)
}

func (s *Service) CreateAlvara(ctx context.Context, caseID string, form AlvaraForm) (*domain.Alvara, error) {
	req, err := form.Payload(caseID)
	if err != nil {
		return nil, err
	}
	return s.alvaraRepo.Create(ctx, req)
}

func (s *Service) UpdateAlvara(ctx context.Context, alvaraID string, form AlvaraForm) (*domain.Alvara, error) {
	req, err := form.Payload("")
	if err != nil {
		return nil, err
	}
	return s.alvaraRepo.Update(ctx, alvaraID, req)
}

// ToggleAlvara flips a payout between pending and paid.
func (s *Service) ToggleAlvara(ctx context.Context, alvara domain.Alvara) (*domain.Alvara, error) {
	form := FormFromAlvara(alvara)
	if alvara.Pending() {
		form.StatusAlvara = domain.AlvaraPaid
	} else {
		form.StatusAlvara = domain.AlvaraPending
	}
	return s.UpdateAlvara(ctx, alvara.ID, form)
}

func (s *Service) DeleteAlvara(ctx context.Context, alvaraID string) error {
	if err := s.alvaraRepo.Delete(ctx, alvaraID); err != nil {
		return err
	}
	zap.L().Info("alvara deleted", zap.String("alvara_id", alvaraID))
	return nil
}
