package detailservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/remote"
)

func NewMock(t *testing.T) (*Service, *MockCaseRepo, *MockAgreementRepo, *MockAlvaraRepo) {
	ctrl := gomock.NewController(t)
	caseRepo := NewMockCaseRepo(ctrl)
	agreementRepo := NewMockAgreementRepo(ctrl)
	alvaraRepo := NewMockAlvaraRepo(ctrl)

	service := New(caseRepo, agreementRepo, alvaraRepo)
	defer ctrl.Finish()
	return service, caseRepo, agreementRepo, alvaraRepo
}

func strPtr(s string) *string { return &s }

func TestAgreementForm_Autofill(t *testing.T) {
	tests := []struct {
		name      string
		form      AgreementForm
		wantValue string
		wantDue   string
	}{
		{
			name:      "Value from total and count",
			form:      AgreementForm{TotalValue: "1000", InstallmentsCount: "3"},
			wantValue: "333.33",
		},
		{
			name:      "Entry is deducted and drives first due date",
			form:      AgreementForm{TotalValue: "1.000,00", InstallmentsCount: "3", HasEntry: true, EntryValue: "100", EntryDate: "2024-01-31"},
			wantValue: "300.00",
			wantDue:   "2024-02-29",
		},
		{
			name:      "Typed due date is kept for the same entry date",
			form:      AgreementForm{TotalValue: "1000", InstallmentsCount: "2", HasEntry: true, EntryValue: "200", EntryDate: "2024-01-31", FirstDueDate: "2024-03-05", dueFrom: "2024-01-31"},
			wantValue: "400.00",
			wantDue:   "2024-03-05",
		},
		{
			name:      "New entry date replaces a filled due date",
			form:      AgreementForm{TotalValue: "1000", InstallmentsCount: "2", HasEntry: true, EntryValue: "200", EntryDate: "2024-03-31", FirstDueDate: "2024-02-29", dueFrom: "2024-01-31"},
			wantValue: "400.00",
			wantDue:   "2024-04-30",
		},
		{
			name:      "Stored due date follows a changed entry date",
			form:      FormFromAgreement(domain.Agreement{TotalValue: decimal.NewFromInt(1000), InstallmentsCount: 2, HasEntry: true, EntryValue: decimal.NewFromInt(200), EntryDate: "31/03/2024", FirstDueDate: "2024-02-29"}),
			wantValue: "400.00",
			wantDue:   "2024-04-30",
		},
		{
			name:      "Invalid count leaves value untouched",
			form:      AgreementForm{TotalValue: "1000", InstallmentsCount: "x", InstallmentValue: "50"},
			wantValue: "50",
		},
		{
			name:      "Entry ignored when not flagged",
			form:      AgreementForm{TotalValue: "1000", InstallmentsCount: "4", EntryValue: "500"},
			wantValue: "250.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Autofill()
			assert.Equal(t, tt.wantValue, got.InstallmentValue)
			assert.Equal(t, tt.wantDue, got.FirstDueDate)
		})
	}
}

func TestAgreementForm_AutofillTracksEntryDate(t *testing.T) {
	form := AgreementForm{TotalValue: "1000", InstallmentsCount: "2", HasEntry: true, EntryValue: "200", EntryDate: "2024-01-31"}

	form = form.Autofill()
	assert.Equal(t, "2024-02-29", form.FirstDueDate)

	form.EntryDate = "2024-03-31"
	form = form.Autofill()
	assert.Equal(t, "2024-04-30", form.FirstDueDate)

	form.FirstDueDate = "2024-05-15"
	form = form.Autofill()
	assert.Equal(t, "2024-05-15", form.FirstDueDate)
}

func TestAgreementForm_Payload(t *testing.T) {
	valid := AgreementForm{TotalValue: "1200", InstallmentsCount: "3", InstallmentValue: "400", FirstDueDate: "10/02/2024"}

	req, err := valid.Payload("c1")
	require.NoError(t, err)
	assert.Equal(t, dto.AgreementRequestDTO{
		CaseID:            "c1",
		TotalValue:        1200,
		InstallmentsCount: 3,
		InstallmentValue:  400,
		FirstDueDate:      "2024-02-10",
	}, req)

	withEntry := valid
	withEntry.HasEntry, withEntry.EntryValue, withEntry.EntryDate, withEntry.EntryViaAlvara = true, "200", "10/01/2024", true
	req, err = withEntry.Payload("c1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, req.EntryValue)
	assert.Equal(t, strPtr("2024-01-10"), req.EntryDate)
	assert.True(t, req.EntryViaAlvara)

	tests := []struct {
		name    string
		mutate  func(f *AgreementForm)
		wantErr error
	}{
		{name: "Total", mutate: func(f *AgreementForm) { f.TotalValue = "0" }, wantErr: ErrInvalidTotal},
		{name: "Count", mutate: func(f *AgreementForm) { f.InstallmentsCount = "0" }, wantErr: ErrInvalidCount},
		{name: "Installment", mutate: func(f *AgreementForm) { f.InstallmentValue = "" }, wantErr: ErrInvalidInstallment},
		{name: "Due date", mutate: func(f *AgreementForm) { f.FirstDueDate = "" }, wantErr: ErrDueDateRequired},
		{name: "Entry too big", mutate: func(f *AgreementForm) { f.HasEntry, f.EntryValue = true, "1200" }, wantErr: ErrInvalidEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			_, err := f.Payload("c1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentForm_Payload(t *testing.T) {
	req, err := PaymentForm{PaidDate: "10/03/2024", PaidValue: "400,00"}.Payload()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", *req.PaidDate)
	assert.Equal(t, 400.0, *req.PaidValue)
	assert.Nil(t, req.DueDate)

	req, err = PaymentForm{DueDate: "2024-04-10"}.Payload()
	require.NoError(t, err)
	assert.Nil(t, req.PaidDate)
	assert.Nil(t, req.PaidValue)
	assert.Equal(t, "2024-04-10", *req.DueDate)

	_, err = PaymentForm{PaidDate: "2024-03-10"}.Payload()
	assert.ErrorIs(t, err, ErrIncompletePayment)

	_, err = PaymentForm{PaidDate: "2024-03-10", PaidValue: "abc"}.Payload()
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestAlvaraForm_Payload(t *testing.T) {
	req, err := AlvaraForm{DataAlvara: "02/05/2024", ValorAlvara: "300", BeneficiarioCodigo: "14"}.Payload("c1")
	require.NoError(t, err)
	assert.Equal(t, dto.AlvaraRequestDTO{
		CaseID:             "c1",
		DataAlvara:         "2024-05-02",
		ValorAlvara:        300,
		BeneficiarioCodigo: "14",
		StatusAlvara:       domain.AlvaraPending,
	}, req)

	_, err = AlvaraForm{DataAlvara: "2024-05-02", ValorAlvara: "300", BeneficiarioCodigo: "99"}.Payload("c1")
	assert.ErrorIs(t, err, ErrInvalidBeneficiary)

	_, err = AlvaraForm{DataAlvara: "2024-05-02", ValorAlvara: "-3", BeneficiarioCodigo: "31"}.Payload("c1")
	assert.ErrorIs(t, err, ErrInvalidAlvaraValue)

	_, err = AlvaraForm{DataAlvara: "2024-05-02", ValorAlvara: "3", BeneficiarioCodigo: "31", StatusAlvara: "Cancelado"}.Payload("c1")
	assert.ErrorIs(t, err, ErrInvalidAlvaraStatus)
}

func TestLoadAndDeleteCase(t *testing.T) {
	ctx := context.Background()
	service, caseRepo, _, _ := NewMock(t)

	caseRepo.EXPECT().Detail(ctx, "c1").Return(&domain.CaseDetail{Case: domain.Case{ID: "c1"}}, nil)
	detail, err := service.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", detail.Case.ID)

	caseRepo.EXPECT().Delete(ctx, "c1").Return(&remote.APIError{Status: 404, Detail: "Case not found"})
	assert.Error(t, service.DeleteCase(ctx, "c1"))
}

func TestCreateAgreement(t *testing.T) {
	ctx := context.Background()
	service, _, agreementRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		form          AgreementForm
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Computed values are sent",
			form: AgreementForm{TotalValue: "1000", InstallmentsCount: "3", HasEntry: true, EntryValue: "100", EntryDate: "2024-01-31"},
			prepareMock: func() {
				agreementRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req dto.AgreementRequestDTO) (*domain.Agreement, error) {
					assert.Equal(t, 300.0, req.InstallmentValue)
					assert.Equal(t, "2024-02-29", req.FirstDueDate)
					return &domain.Agreement{ID: "a1"}, nil
				})
			},
		},
		{
			name:          "Invalid form never reaches backend",
			form:          AgreementForm{TotalValue: "abc"},
			prepareMock:   func() {},
			expectedError: ErrInvalidTotal,
		},
		{
			name: "Backend rejection",
			form: AgreementForm{TotalValue: "1000", InstallmentsCount: "2", FirstDueDate: "2024-02-01"},
			prepareMock: func() {
				agreementRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, &remote.APIError{Status: 400, Detail: "Case already has an agreement"})
			},
			expectedError: &remote.APIError{Status: 400, Detail: "Case already has an agreement"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.CreateAgreement(ctx, "c1", tt.form)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateDeleteAgreement(t *testing.T) {
	ctx := context.Background()
	service, _, agreementRepo, _ := NewMock(t)

	form := FormFromAgreement(domain.Agreement{
		TotalValue:        decimal.NewFromInt(900),
		InstallmentsCount: 3,
		InstallmentValue:  decimal.NewFromInt(300),
		FirstDueDate:      "2024-02-01",
	})
	agreementRepo.EXPECT().Update(ctx, "a1", gomock.Any()).Return(&domain.Agreement{ID: "a1"}, nil)
	_, err := service.UpdateAgreement(ctx, "c1", "a1", form)
	require.NoError(t, err)

	agreementRepo.EXPECT().Delete(ctx, "a1").Return(nil)
	assert.NoError(t, service.DeleteAgreement(ctx, "a1"))
}

func TestUpdateInstallment(t *testing.T) {
	ctx := context.Background()
	service, _, agreementRepo, _ := NewMock(t)

	agreementRepo.EXPECT().UpdateInstallment(ctx, "i1", gomock.Any()).Return(&domain.Installment{ID: "i1", StatusCalc: "Pago"}, nil)
	inst, err := service.UpdateInstallment(ctx, "i1", PaymentForm{PaidDate: "2024-03-10", PaidValue: "400"})
	require.NoError(t, err)
	assert.Equal(t, "Pago", inst.StatusCalc)

	_, err = service.UpdateInstallment(ctx, "i1", PaymentForm{PaidValue: "400"})
	assert.ErrorIs(t, err, ErrIncompletePayment)
}

func TestAlvaraOperations(t *testing.T) {
	ctx := context.Background()
	service, _, _, alvaraRepo := NewMock(t)
	alvara := domain.Alvara{
		ID:                 "v1",
		DataAlvara:         "2024-05-02",
		ValorAlvara:        decimal.NewFromInt(300),
		BeneficiarioCodigo: "31",
		StatusAlvara:       domain.AlvaraPending,
	}

	alvaraRepo.EXPECT().Create(ctx, gomock.Any()).Return(&alvara, nil)
	_, err := service.CreateAlvara(ctx, "c1", FormFromAlvara(alvara))
	require.NoError(t, err)

	alvaraRepo.EXPECT().Update(ctx, "v1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, req dto.AlvaraRequestDTO) (*domain.Alvara, error) {
		assert.Equal(t, domain.AlvaraPaid, req.StatusAlvara)
		assert.Equal(t, 300.0, req.ValorAlvara)
		return &domain.Alvara{ID: "v1", StatusAlvara: req.StatusAlvara}, nil
	})
	toggled, err := service.ToggleAlvara(ctx, alvara)
	require.NoError(t, err)
	assert.False(t, toggled.Pending())

	paid := alvara
	paid.StatusAlvara = domain.AlvaraPaid
	alvaraRepo.EXPECT().Update(ctx, "v1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, req dto.AlvaraRequestDTO) (*domain.Alvara, error) {
		assert.Equal(t, domain.AlvaraPending, req.StatusAlvara)
		return &domain.Alvara{ID: "v1", StatusAlvara: req.StatusAlvara}, nil
	})
	_, err = service.ToggleAlvara(ctx, paid)
	require.NoError(t, err)

	alvaraRepo.EXPECT().Delete(ctx, "v1").Return(errors.New("boom"))
	assert.Error(t, service.DeleteAlvara(ctx, "v1"))
}
