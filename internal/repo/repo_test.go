package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/acordos/internal/remote"
	agreementrepo "github.com/GlebRadaev/acordos/internal/repo/agreement-repo"
	alvararepo "github.com/GlebRadaev/acordos/internal/repo/alvara-repo"
	caserepo "github.com/GlebRadaev/acordos/internal/repo/case-repo"
	importrepo "github.com/GlebRadaev/acordos/internal/repo/import-repo"
	receiptrepo "github.com/GlebRadaev/acordos/internal/repo/receipt-repo"
	userrepo "github.com/GlebRadaev/acordos/internal/repo/user-repo"
	"github.com/GlebRadaev/acordos/internal/session"
	"github.com/GlebRadaev/acordos/pkg/clients"
)

func TestNew(t *testing.T) {
	db := remote.New("http://localhost:8000/api", clients.NewHTTPClient(0), session.New(&session.MemoryStore{}))
	repo := New(db)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CaseRepo)
	assert.NotNil(t, repo.AgreementRepo)
	assert.NotNil(t, repo.AlvaraRepo)
	assert.NotNil(t, repo.ReceiptRepo)
	assert.NotNil(t, repo.ImportRepo)
	assert.Same(t, repo.AlvaraRepo, repo.PendingRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &caserepo.Repository{}, repo.CaseRepo)
	assert.IsType(t, &agreementrepo.Repository{}, repo.AgreementRepo)
	assert.IsType(t, &alvararepo.Repository{}, repo.AlvaraRepo)
	assert.IsType(t, &alvararepo.Repository{}, repo.PendingRepo)
	assert.IsType(t, &receiptrepo.Repository{}, repo.ReceiptRepo)
	assert.IsType(t, &importrepo.Repository{}, repo.ImportRepo)
}
