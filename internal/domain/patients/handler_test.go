package patients

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/medpaw02-hue/PawMed/internal/apierror"
)

func newTestRouter(svc *Service) *chi.Mux {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, false)
	return r
}

func TestDeleteHandler_AbortedCascade_ReturnsCountsIn502(t *testing.T) {
	repo := newTestRepo()
	repo.byID["1"] = Patient{ID: "1", Nombre: "Milo"}

	consultas := &testDependents{
		ids:    map[string][]string{"1": {"10", "11", "12"}},
		failOn: "11",
	}
	router := newTestRouter(NewService(repo, consultas))

	req := httptest.NewRequest(http.MethodDelete, "/api/patients/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadGateway)
	}
	var body apierror.APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.DependentsDeleted == nil || body.DependentsTotal == nil {
		t.Fatalf("expected cascade counters in body: %s", rec.Body.String())
	}
	if *body.DependentsDeleted != 1 || *body.DependentsTotal != 3 {
		t.Fatalf("expected 1/3 dependents deleted, got %d/%d",
			*body.DependentsDeleted, *body.DependentsTotal)
	}
	if body.Error == "" {
		t.Fatalf("expected error message in body")
	}
}

func TestUpsertHandler_WhitespaceNombre_Is400(t *testing.T) {
	router := newTestRouter(NewService(newTestRepo()))

	// "   " pasa el required del validator pero el service lo rechaza
	// al normalizar; tiene que salir como 400, no como 502.
	payload := `{"nombre":"   ","especie":"Canino","propietario":"Ana"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients/", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestDeleteHandler_WhitespaceID_Is400(t *testing.T) {
	router := newTestRouter(NewService(newTestRepo()))

	req := httptest.NewRequest(http.MethodDelete, "/api/patients/%20%20", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}
