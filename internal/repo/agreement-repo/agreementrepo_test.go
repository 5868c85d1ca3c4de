package agreementrepo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestRepository_Create(t *testing.T) {
	var raw map[string]any
	repo := NewMock(t, func(r chi.Router) {
		r.Post("/agreements", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&raw)
			_, _ = w.Write([]byte(`{"id":"a1","case_id":"c1","total_value":1200,"installments_count":3,"installment_value":400}`))
		})
	})

	agreement, err := repo.Create(context.Background(), dto.AgreementRequestDTO{
		CaseID:            "c1",
		TotalValue:        1200,
		InstallmentsCount: 3,
		InstallmentValue:  400,
		FirstDueDate:      "2024-02-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", agreement.ID)
	assert.Equal(t, 3, agreement.InstallmentsCount)
	assert.Equal(t, "c1", raw["case_id"])
	assert.Equal(t, 1200.0, raw["total_value"])
	assert.Nil(t, raw["entry_date"])
}

func TestRepository_UpdateDelete(t *testing.T) {
	var updated, deleted string
	repo := NewMock(t, func(r chi.Router) {
		r.Put("/agreements/{id}", func(w http.ResponseWriter, r *http.Request) {
			updated = chi.URLParam(r, "id")
			_, _ = w.Write([]byte(`{"id":"a1"}`))
		})
		r.Delete("/agreements/{id}", func(w http.ResponseWriter, r *http.Request) {
			deleted = chi.URLParam(r, "id")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"Agreement has payments"}`))
		})
	})

	_, err := repo.Update(context.Background(), "a1", dto.AgreementRequestDTO{CaseID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "a1", updated)

	err = repo.Delete(context.Background(), "a1")
	assert.EqualError(t, err, "Agreement has payments")
	assert.Equal(t, "a1", deleted)
}

func TestRepository_UpdateInstallment(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.InstallmentUpdateDTO
		wantRaw map[string]any
	}{
		{
			name: "Mark paid",
			req: func() dto.InstallmentUpdateDTO {
				date, value := "2024-03-10", 400.0
				return dto.InstallmentUpdateDTO{PaidDate: &date, PaidValue: &value}
			}(),
			wantRaw: map[string]any{"paid_date": "2024-03-10", "paid_value": 400.0},
		},
		{
			name: "Clear payment and move due date",
			req: func() dto.InstallmentUpdateDTO {
				due := "2024-04-10"
				return dto.InstallmentUpdateDTO{DueDate: &due}
			}(),
			wantRaw: map[string]any{"paid_date": nil, "paid_value": nil, "due_date": "2024-04-10"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw map[string]any
			repo := NewMock(t, func(r chi.Router) {
				r.Put("/installments/{id}", func(w http.ResponseWriter, r *http.Request) {
					_ = json.NewDecoder(r.Body).Decode(&raw)
					_, _ = w.Write([]byte(`{"id":"` + chi.URLParam(r, "id") + `","status_calc":"Pago"}`))
				})
			})

			inst, err := repo.UpdateInstallment(context.Background(), "i7", tt.req)
			require.NoError(t, err)
			assert.Equal(t, "i7", inst.ID)
			assert.Equal(t, tt.wantRaw, raw)
		})
	}
}
