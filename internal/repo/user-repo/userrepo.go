package userrepo

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

func (repo *Repository) Login(ctx context.Context, req dto.LoginRequestDTO) (string, error) {
	var resp dto.TokenResponseDTO
	if err := repo.db.Public(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		zap.L().Info("login rejected", zap.String("email", req.Email), zap.Error(err))
		return "", err
	}
	return resp.Token, nil
}

func (repo *Repository) Register(ctx context.Context, req dto.RegisterRequestDTO) (string, error) {
	var resp dto.TokenResponseDTO
	if err := repo.db.Public(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		zap.L().Info("registration rejected", zap.String("email", req.Email), zap.Error(err))
		return "", err
	}
	return resp.Token, nil
}

func (repo *Repository) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := repo.db.Do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
