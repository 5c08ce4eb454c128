package consultations

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
	r.Route("/api/consultations", func(cr chi.Router) {
		cr.Get("/", listConsultationsHandler(svc))
		cr.Post("/", upsertConsultationHandler(svc, requireAuth))
		cr.Put("/{id}", upsertConsultationHandler(svc, requireAuth))
		cr.Delete("/{id}", deleteConsultationHandler(svc, requireAuth))
	})
}

// El DTO va plano como la fila de la hoja: el examen físico no se
// anida en el JSON aunque el modelo lo agrupe.
type consultationRequest struct {
	ID         string `json:"id"`
	PacienteID string `json:"pacienteId" validate:"required"`
	Fecha      string `json:"fecha"`
	Motivo     string `json:"motivo" validate:"required"`

	Temperatura            string `json:"temperatura"`
	Peso                   string `json:"peso"`
	CondicionCorporal      string `json:"condicionCorporal"`
	FrecuenciaCardiaca     string `json:"frecuenciaCardiaca"`
	FrecuenciaRespiratoria string `json:"frecuenciaRespiratoria"`
	Mucosas                string `json:"mucosas"`
	TiempoLlenadoCapilar   string `json:"tiempoLlenadoCapilar"`
	Ganglios               string `json:"ganglios"`
	ReflejoDeglutorio      string `json:"reflejoDeglutorio"`
	ReflejoTusigeno        string `json:"reflejoTusigeno"`
	EstadoHidratacion      string `json:"estadoHidratacion"`

	Hallazgos             string `json:"hallazgos"`
	DiagnosticoPresuntivo string `json:"diagnosticoPresuntivo"`
	DiagnosticoDefinitivo string `json:"diagnosticoDefinitivo"`
	Tratamiento           string `json:"tratamiento"`
	IndicacionEvolucion   string `json:"indicacionEvolucion"`
	Valor                 string `json:"valor"`
	Notas                 string `json:"notas"`
}

type consultationResponse = consultationRequest

func listConsultationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Consultation
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
		out := make([]consultationResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toConsultationResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func upsertConsultationHandler(svc *Service, requireAuth bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requireAuth && !middleware.HasSession(r.Context()) {
			apierror.Write(w, http.StatusUnauthorized, "sesión requerida")
			return
		}

		var req consultationRequest
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
		c, err := svc.Upsert(r.Context(), fromConsultationRequest(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidValor) {
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
		writeJSON(w, status, toConsultationResponse(c))
	}
}

func deleteConsultationHandler(svc *Service, requireAuth bool) http.HandlerFunc {
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

func fromConsultationRequest(req consultationRequest) Consultation {
	return Consultation{
		ID:         req.ID,
		PacienteID: req.PacienteID,
		Fecha:      req.Fecha,
		Motivo:     req.Motivo,
		Examen: PhysicalExam{
			Temperatura:            req.Temperatura,
			Peso:                   req.Peso,
			CondicionCorporal:      req.CondicionCorporal,
			FrecuenciaCardiaca:     req.FrecuenciaCardiaca,
			FrecuenciaRespiratoria: req.FrecuenciaRespiratoria,
			Mucosas:                req.Mucosas,
			TiempoLlenadoCapilar:   req.TiempoLlenadoCapilar,
			Ganglios:               req.Ganglios,
			ReflejoDeglutorio:      req.ReflejoDeglutorio,
			ReflejoTusigeno:        req.ReflejoTusigeno,
			EstadoHidratacion:      req.EstadoHidratacion,
		},
		Hallazgos:             req.Hallazgos,
		DiagnosticoPresuntivo: req.DiagnosticoPresuntivo,
		DiagnosticoDefinitivo: req.DiagnosticoDefinitivo,
		Tratamiento:           req.Tratamiento,
		IndicacionEvolucion:   req.IndicacionEvolucion,
		Valor:                 req.Valor,
		Notas:                 req.Notas,
	}
}

func toConsultationResponse(c Consultation) consultationResponse {
	return consultationResponse{
		ID:                     c.ID,
		PacienteID:             c.PacienteID,
		Fecha:                  c.Fecha,
		Motivo:                 c.Motivo,
		Temperatura:            c.Examen.Temperatura,
		Peso:                   c.Examen.Peso,
		CondicionCorporal:      c.Examen.CondicionCorporal,
		FrecuenciaCardiaca:     c.Examen.FrecuenciaCardiaca,
		FrecuenciaRespiratoria: c.Examen.FrecuenciaRespiratoria,
		Mucosas:                c.Examen.Mucosas,
		TiempoLlenadoCapilar:   c.Examen.TiempoLlenadoCapilar,
		Ganglios:               c.Examen.Ganglios,
		ReflejoDeglutorio:      c.Examen.ReflejoDeglutorio,
		ReflejoTusigeno:        c.Examen.ReflejoTusigeno,
		EstadoHidratacion:      c.Examen.EstadoHidratacion,
		Hallazgos:              c.Hallazgos,
		DiagnosticoPresuntivo:  c.DiagnosticoPresuntivo,
		DiagnosticoDefinitivo:  c.DiagnosticoDefinitivo,
		Tratamiento:            c.Tratamiento,
		IndicacionEvolucion:    c.IndicacionEvolucion,
		Valor:                  c.Valor,
		Notas:                  c.Notas,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
