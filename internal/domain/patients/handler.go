package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/medpaw02-hue/PawMed/internal/apierror"
	"github.com/medpaw02-hue/PawMed/internal/middleware"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service, requireAuth bool) {
	r.Route("/api/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", upsertPatientHandler(svc, requireAuth))
		pr.Put("/{id}", upsertPatientHandler(svc, requireAuth))
		pr.Delete("/{id}", deletePatientHandler(svc, requireAuth))
	})
}

type patientRequest struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre" validate:"required"`
	Edad         string `json:"edad"`
	Especie      string `json:"especie" validate:"required"`
	Raza         string `json:"raza"`
	Color        string `json:"color"`
	Sexo         string `json:"sexo"`
	Esterilizado string `json:"esterilizado"`
	Propietario  string `json:"propietario" validate:"required"`
	Cedula       string `json:"cedula"`
	Telefono     string `json:"telefono"`
	Direccion    string `json:"direccion"`
	Email        string `json:"email" validate:"omitempty,email"`
	Notas        string `json:"notas"`
}

type patientResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Edad         string `json:"edad"`
	Especie      string `json:"especie"`
	Raza         string `json:"raza"`
	Color        string `json:"color"`
	Sexo         string `json:"sexo"`
	Esterilizado string `json:"esterilizado"`
	Propietario  string `json:"propietario"`
	Cedula       string `json:"cedula"`
	Telefono     string `json:"telefono"`
	Direccion    string `json:"direccion"`
	Email        string `json:"email"`
	Notas        string `json:"notas"`
}

func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			apierror.WriteErr(w, err)
			return
		}
		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func upsertPatientHandler(svc *Service, requireAuth bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requireAuth && !middleware.HasSession(r.Context()) {
			apierror.Write(w, http.StatusUnauthorized, "sesión requerida")
			return
		}

		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apierror.Write(w, http.StatusBadRequest, "JSON inválido")
			return
		}
		// En PUT el id de la ruta manda sobre el del body.
		if routeID := chi.URLParam(r, "id"); routeID != "" {
			req.ID = routeID
		}
		if err := validate.Struct(req); err != nil {
			apierror.Write(w, http.StatusBadRequest, err.Error())
			return
		}

		created := req.ID == ""
		p, err := svc.Upsert(r.Context(), Patient{
			ID:           req.ID,
			Nombre:       req.Nombre,
			Edad:         req.Edad,
			Especie:      req.Especie,
			Raza:         req.Raza,
			Color:        req.Color,
			Sexo:         req.Sexo,
			Esterilizado: req.Esterilizado,
			Propietario:  req.Propietario,
			Cedula:       req.Cedula,
			Telefono:     req.Telefono,
			Direccion:    req.Direccion,
			Email:        req.Email,
			Notas:        req.Notas,
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
		writeJSON(w, status, toPatientResponse(p))
	}
}

// deletePatientHandler SIEMPRE borra en cascada: primero recetas y
// consultas del paciente, después la ficha. La hoja no tiene claves
// foráneas; si se borrara solo la fila quedarían consultas huérfanas.
func deletePatientHandler(svc *Service, requireAuth bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requireAuth && !middleware.HasSession(r.Context()) {
			apierror.Write(w, http.StatusUnauthorized, "sesión requerida")
			return
		}

		report, err := svc.DeleteCascade(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				apierror.Write(w, http.StatusBadRequest, err.Error())
				return
			}
			var cascadeErr *CascadeError
			if errors.As(err, &cascadeErr) {
				writeJSON(w, http.StatusBadGateway, apierror.APIError{
					Error:             cascadeErr.Error(),
					DependentsDeleted: &cascadeErr.Completed,
					DependentsTotal:   &cascadeErr.Total,
				})
				return
			}
			apierror.WriteErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Edad:         p.Edad,
		Especie:      p.Especie,
		Raza:         p.Raza,
		Color:        p.Color,
		Sexo:         p.Sexo,
		Esterilizado: p.Esterilizado,
		Propietario:  p.Propietario,
		Cedula:       p.Cedula,
		Telefono:     p.Telefono,
		Direccion:    p.Direccion,
		Email:        p.Email,
		Notas:        p.Notas,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo;
// si aparece un quinto módulo conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
