package authn

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/medpaw02-hue/PawMed/internal/apierror"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/login", loginHandler(svc))
}

type loginRequest struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token   string `json:"token,omitempty"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apierror.Write(w, http.StatusBadRequest, "JSON inválido")
			return
		}
		if err := validate.Struct(req); err != nil {
			apierror.Write(w, http.StatusBadRequest, "usuario y password son obligatorios")
			return
		}

		sess, err := svc.Login(r.Context(), Credentials{
			Usuario:  req.Usuario,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				apierror.Write(w, http.StatusBadRequest, "usuario y password son obligatorios")
				return
			}
			if errors.Is(err, ErrInvalidCredentials) {
				apierror.Write(w, http.StatusUnauthorized, "usuario o password incorrectos")
				return
			}
			// Todo lo demás (transporte, throttling) pasa por el mapeo
			// central; el password nunca se loguea acá.
			apierror.WriteErr(w, err)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Token:   sess.Token,
			Usuario: sess.Usuario,
			Rol:     sess.Rol,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
