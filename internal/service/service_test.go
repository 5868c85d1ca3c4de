package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/acordos/internal/config"
	"github.com/GlebRadaev/acordos/internal/repo"
	"github.com/GlebRadaev/acordos/internal/service/alvaraservice"
	"github.com/GlebRadaev/acordos/internal/service/authservice"
	"github.com/GlebRadaev/acordos/internal/service/caseservice"
	"github.com/GlebRadaev/acordos/internal/service/detailservice"
	"github.com/GlebRadaev/acordos/internal/service/importservice"
	"github.com/GlebRadaev/acordos/internal/service/receiptservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:      authservice.NewMockRepo(ctrl),
		CaseRepo:      caseservice.NewMockRepo(ctrl),
		AgreementRepo: detailservice.NewMockAgreementRepo(ctrl),
		AlvaraRepo:    detailservice.NewMockAlvaraRepo(ctrl),
		PendingRepo:   alvaraservice.NewMockRepo(ctrl),
		ReceiptRepo:   receiptservice.NewMockRepo(ctrl),
		ImportRepo:    importservice.NewMockRepo(ctrl),
	}
	cfg := &config.Config{PageSize: 25, ImportMaxMB: 5}

	services := New(repos, authservice.NewMockCredential(ctrl), cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CaseService)
	assert.NotNil(t, services.DetailService)
	assert.NotNil(t, services.ReceiptService)
	assert.NotNil(t, services.AlvaraService)
	assert.NotNil(t, services.ImportWizard)

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &caseservice.Service{}, services.CaseService)
	assert.IsType(t, &detailservice.Service{}, services.DetailService)
	assert.IsType(t, &receiptservice.Service{}, services.ReceiptService)
	assert.IsType(t, &alvaraservice.Service{}, services.AlvaraService)
	assert.IsType(t, &importservice.Wizard{}, services.ImportWizard)
}
