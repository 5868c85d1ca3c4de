package importrepo

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/remote"
)

const uploadField = "file"

type Repository struct {
	db remote.Database
}

func New(db remote.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var resp dto.UploadResponseDTO
	if err := repo.db.Upload(ctx, "/import/upload", uploadField, filename, content, &resp); err != nil {
		zap.L().Error("can't upload spreadsheet", zap.String("filename", filename), zap.Error(err))
		return "", err
	}
	return resp.SessionID, nil
}

func (repo *Repository) Preview(ctx context.Context, sessionID string, sampleSize int) (*dto.PreviewResponseDTO, error) {
	var resp dto.PreviewResponseDTO
	req := dto.PreviewRequestDTO{SessionID: sessionID, SampleSize: sampleSize}
	if err := repo.db.Do(ctx, http.MethodPost, "/import/preview", nil, req, &resp); err != nil {
		zap.L().Error("can't preview import", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (repo *Repository) Validate(ctx context.Context, sessionID string, mapping dto.Mapping) (*dto.ValidationResponseDTO, error) {
	var resp dto.ValidationResponseDTO
	req := dto.MappingRequestDTO{SessionID: sessionID, Mapping: mapping}
	if err := repo.db.Do(ctx, http.MethodPost, "/import/validate", nil, req, &resp); err != nil {
		zap.L().Error("can't validate import", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (repo *Repository) Commit(ctx context.Context, sessionID string, mapping dto.Mapping) (*dto.CommitResponseDTO, error) {
	var resp dto.CommitResponseDTO
	req := dto.MappingRequestDTO{SessionID: sessionID, Mapping: mapping}
	if err := repo.db.Do(ctx, http.MethodPost, "/import/commit", nil, req, &resp); err != nil {
		zap.L().Error("can't commit import", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (repo *Repository) History(ctx context.Context) ([]domain.ImportHistoryEntry, error) {
	var entries []domain.ImportHistoryEntry
	if err := repo.db.Do(ctx, http.MethodGet, "/import/history", nil, nil, &entries); err != nil {
		zap.L().Error("can't load import history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
