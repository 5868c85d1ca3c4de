package userrepo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/remote"
	"github.com/GlebRadaev/acordos/internal/session"
	"github.com/GlebRadaev/acordos/pkg/clients"
)

func NewMock(t *testing.T, routes func(r chi.Router)) *Repository {
	r := chi.NewRouter()
	r.Route("/api", routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	holder := session.New(&session.MemoryStore{})
	require.NoError(t, holder.Set("token"))
	return New(remote.New(srv.URL+"/api", clients.NewHTTPClient(0), holder))
}

func TestRepository_Login(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		expectErr bool
		result    string
	}{
		{
			name: "Token issued",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req dto.LoginRequestDTO
				_ = json.NewDecoder(r.Body).Decode(&req)
				if req.Email != "ana@example.com" || req.Password != "secret" || r.Header.Get("Authorization") != "" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte(`{"token":"jwt-token"}`))
			},
			result: "jwt-token",
		},
		{
			name: "Wrong password",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMock(t, func(r chi.Router) {
				r.Post("/auth/login", tt.handler)
			})

			token, err := repo.Login(context.Background(), dto.LoginRequestDTO{Email: "ana@example.com", Password: "secret"})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, token)
		})
	}
}

func TestRepository_Register(t *testing.T) {
	var got dto.RegisterRequestDTO
	repo := NewMock(t, func(r chi.Router) {
		r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"token":"new-token"}`))
		})
	})

	token, err := repo.Register(context.Background(), dto.RegisterRequestDTO{Email: "ana@example.com", Password: "secret", FullName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
	assert.Equal(t, "Ana", got.FullName)
}

func TestRepository_Me(t *testing.T) {
	repo := NewMock(t, func(r chi.Router) {
		r.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"id":"u1","email":"ana@example.com","full_name":"Ana"}`))
		})
	})

	user, err := repo.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.User{ID: "u1", Email: "ana@example.com", FullName: "Ana"}, user)
}
