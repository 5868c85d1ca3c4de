package repo

import (
	"github.com/GlebRadaev/acordos/internal/remote"
	agreementrepo "github.com/GlebRadaev/acordos/internal/repo/agreement-repo"
	alvararepo "github.com/GlebRadaev/acordos/internal/repo/alvara-repo"
	caserepo "github.com/GlebRadaev/acordos/internal/repo/case-repo"
	importrepo "github.com/GlebRadaev/acordos/internal/repo/import-repo"
	receiptrepo "github.com/GlebRadaev/acordos/internal/repo/receipt-repo"
	userrepo "github.com/GlebRadaev/acordos/internal/repo/user-repo"
	"github.com/GlebRadaev/acordos/internal/service/alvaraservice"
	"github.com/GlebRadaev/acordos/internal/service/authservice"
	"github.com/GlebRadaev/acordos/internal/service/caseservice"
	"github.com/GlebRadaev/acordos/internal/service/detailservice"
	"github.com/GlebRadaev/acordos/internal/service/importservice"
	"github.com/GlebRadaev/acordos/internal/service/receiptservice"
)

type Repositories struct {
	UserRepo      authservice.Repo
	CaseRepo      caseservice.Repo
	AgreementRepo detailservice.AgreementRepo
	AlvaraRepo    detailservice.AlvaraRepo
	PendingRepo   alvaraservice.Repo
	ReceiptRepo   receiptservice.Repo
	ImportRepo    importservice.Repo
}

func New(db remote.Database) *Repositories {
	alvaraRepo := alvararepo.New(db)

	return &Repositories{
		UserRepo:      userrepo.New(db),
		CaseRepo:      caserepo.New(db),
		AgreementRepo: agreementrepo.New(db),
		AlvaraRepo:    alvaraRepo,
		PendingRepo:   alvaraRepo,
		ReceiptRepo:   receiptrepo.New(db),
		ImportRepo:    importrepo.New(db),
	}
}
