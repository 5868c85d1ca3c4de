package authservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/session"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingName        = errors.New("full name is required")
	ErrNoToken            = errors.New("backend returned no token")
)

type Repo interface {
	Login(ctx context.Context, req dto.LoginRequestDTO) (string, error)
	Register(ctx context.Context, req dto.RegisterRequestDTO) (string, error)
	Me(ctx context.Context) (*domain.User, error)
}

type Credential interface {
	Set(token string) error
	Clear() error
	Claims() (*session.Claims, error)
}

type Identity struct {
	User   *domain.User
	Claims *session.Claims
}

type Service struct {
	userRepo   Repo
	credential Credential
}

func New(repo Repo, credential Credential) *Service {
	return &Service{
		userRepo:   repo,
		credential: credential,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	token, err := s.userRepo.Login(ctx, dto.LoginRequestDTO{Email: email, Password: password})
	if err != nil {
		return err
	}
	if err := s.store(token); err != nil {
		return err
	}
	zap.L().Info("user signed in", zap.String("email", email))
	return nil
}

func (s *Service) Register(ctx context.Context, email, password, fullName string) error {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if fullName == "" {
		return ErrMissingName
	}

	token, err := s.userRepo.Register(ctx, dto.RegisterRequestDTO{Email: email, Password: password, FullName: fullName})
	if err != nil {
		return err
	}
	if err := s.store(token); err != nil {
		return err
	}
	zap.L().Info("user registered", zap.String("email", email))
	return nil
}

func (s *Service) Logout() error {
	if err := s.credential.Clear(); err != nil {
		zap.L().Error("can't clear session", zap.Error(err))
		return err
	}
	return nil
}

// WhoAmI asks the backend for the current user. Claims are informational and
// left nil when the token can't be decoded.
func (s *Service) WhoAmI(ctx context.Context) (*Identity, error) {
	user, err := s.userRepo.Me(ctx)
	if err != nil {
		return nil, err
	}

	claims, err := s.credential.Claims()
	if err != nil {
		zap.L().Warn("can't decode token claims", zap.Error(err))
		claims = nil
	}
	return &Identity{User: user, Claims: claims}, nil
}

func (s *Service) store(token string) error {
	if token == "" {
		return ErrNoToken
	}
	if err := s.credential.Set(token); err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return err
	}
	return nil
}
