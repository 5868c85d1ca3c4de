package service

import (
	"github.com/GlebRadaev/acordos/internal/config"
	"github.com/GlebRadaev/acordos/internal/console/alvaras"
	"github.com/GlebRadaev/acordos/internal/console/auth"
	"github.com/GlebRadaev/acordos/internal/console/cases"
	"github.com/GlebRadaev/acordos/internal/console/detail"
	"github.com/GlebRadaev/acordos/internal/console/imports"
	"github.com/GlebRadaev/acordos/internal/console/receipts"
	"github.com/GlebRadaev/acordos/internal/repo"
	"github.com/GlebRadaev/acordos/internal/service/alvaraservice"
	"github.com/GlebRadaev/acordos/internal/service/authservice"
	"github.com/GlebRadaev/acordos/internal/service/caseservice"
	"github.com/GlebRadaev/acordos/internal/service/detailservice"
	"github.com/GlebRadaev/acordos/internal/service/importservice"
	"github.com/GlebRadaev/acordos/internal/service/receiptservice"
)

type Services struct {
	AuthService    auth.Service
	CaseService    cases.Service
	DetailService  detail.Service
	ReceiptService receipts.Service
	AlvaraService  alvaras.Service
	ImportWizard   imports.Wizard
}

func New(repo *repo.Repositories, credential authservice.Credential, cfg *config.Config) *Services {
	return &Services{
		AuthService:    authservice.New(repo.UserRepo, credential),
		CaseService:    caseservice.New(repo.CaseRepo, cfg.PageSize),
		DetailService:  detailservice.New(repo.CaseRepo, repo.AgreementRepo, repo.AlvaraRepo),
		ReceiptService: receiptservice.New(repo.ReceiptRepo),
		AlvaraService:  alvaraservice.New(repo.PendingRepo),
		ImportWizard:   importservice.New(repo.ImportRepo, cfg.ImportMaxBytes()),
	}
}
