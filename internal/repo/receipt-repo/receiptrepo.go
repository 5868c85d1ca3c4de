package receiptrepo

import (
	"context"
	"net/http"

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

func (repo *Repository) Report(ctx context.Context, filter dto.ReceiptFilterDTO) (*domain.ReceiptReport, error) {
	var report domain.ReceiptReport
	if err := repo.db.Do(ctx, http.MethodGet, "/receipts", filter.Query(), nil, &report); err != nil {
		zap.L().Error("can't load receipts", zap.Error(err))
		return nil, err
	}
	return &report, nil
}

// PDF returns the report rendered by the backend.
func (repo *Repository) PDF(ctx context.Context, filter dto.ReceiptFilterDTO) ([]byte, error) {
	body, err := repo.db.Download(ctx, "/receipts/pdf", filter.Query())
	if err != nil {
		zap.L().Error("can't download receipts pdf", zap.Error(err))
		return nil, err
	}
	return body, nil
}
