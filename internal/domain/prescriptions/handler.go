package prescriptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/medpaw02-hue/PawMed/internal/apierror"
	"github.com/medpaw02-hue/PawMed/internal/middleware"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service, requireAuth bool) {
	r.Route("/api/prescriptions", func(pr chi.Router) {
		pr.Get("/", listPrescriptionsHandler(svc))
		pr.Post("/", upsertPrescriptionHandler(svc, requireAuth))
		pr.Put("/{id}", upsertPrescriptionHandler(svc, requireAuth))
		pr.Delete("/{id}", deletePrescriptionHandler(svc, requireAuth))
	})
}

type prescriptionRequest struct {
	ID             string `json:"id"`
	ConsultaID     string `json:"consultaId"`
	PacienteID     string `json:"pacienteId" validate:"required"`
	Receta         string `json:"receta" validate:"required"`
	Indicaciones   string `json:"indicaciones"`
	ProximoControl string `json:"proximoControl"`
}

type prescriptionResponse = prescriptionRequest

func listPrescriptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Prescription
			err   error
		)
		if pid := strings.TrimSpace(r.URL.Query().Get("pacienteId")); pid != "" {
			items, err = svc.ListByPaciente(r.Context(), pid)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			apierror.WriteErr(w, err)
			return
		}
		out := make([]prescriptionResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPrescriptionResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func upsertPrescriptionHandler(svc *Service, requireAuth bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requireAuth && !middleware.HasSession(r.Context()) {
			apierror.Write(w, http.StatusUnauthorized, "sesión requerida")
			return
		}

		var req prescriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apierror.Write(w, http.StatusBadRequest, "JSON inválido")
			return
		}
		if routeID := chi.URLParam(r, "id"); routeID != "" {
			req.ID = routeID
		}
		if err := validate.Struct(req); err != nil {
			apierror.Write(w, http.StatusBadRequest, err.Error())
			return
		}

		created := req.ID == ""
		p, err := svc.Upsert(r.Context(), Prescription{
			ID:             req.ID,
			ConsultaID:     req.ConsultaID,
			PacienteID:     req.PacienteID,
			Receta:         req.Receta,
			Indicaciones:   req.Indicaciones,
			ProximoControl: req.ProximoControl,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				apierror.Write(w, http.StatusBadRequest, err.Error())
				return
			}
			apierror.WriteErr(w, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, toPrescriptionResponse(p))
	}
}

func deletePrescriptionHandler(svc *Service, requireAuth bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requireAuth && !middleware.HasSession(r.Context()) {
			apierror.Write(w, http.StatusUnauthorized, "sesión requerida")
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				apierror.Write(w, http.StatusBadRequest, err.Error())
				return
			}
			apierror.WriteErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPrescriptionResponse(p Prescription) prescriptionResponse {
	return prescriptionResponse{
		ID:             p.ID,
		ConsultaID:     p.ConsultaID,
		PacienteID:     p.PacienteID,
		Receta:         p.Receta,
		Indicaciones:   p.Indicaciones,
		ProximoControl: p.ProximoControl,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
