package router

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/medpaw02-hue/PawMed/docs"
	"github.com/medpaw02-hue/PawMed/internal/adapters/auth/token"
	mem "github.com/medpaw02-hue/PawMed/internal/adapters/storage/memory"
	"github.com/medpaw02-hue/PawMed/internal/adapters/storage/sheets"
	"github.com/medpaw02-hue/PawMed/internal/apierror"
	"github.com/medpaw02-hue/PawMed/internal/config"
	"github.com/medpaw02-hue/PawMed/internal/domain/authn"
	"github.com/medpaw02-hue/PawMed/internal/domain/consultations"
	"github.com/medpaw02-hue/PawMed/internal/domain/patients"
	"github.com/medpaw02-hue/PawMed/internal/domain/prescriptions"
	"github.com/medpaw02-hue/PawMed/internal/middleware"
	"github.com/medpaw02-hue/PawMed/internal/platform/httpclient"
	"github.com/medpaw02-hue/PawMed/internal/report"
)

type Options struct {
	// Config de endpoints. Si es nil se carga desde DefaultPath().
	Cfg     *config.Config
	CfgPath string

	// Signer de sesión. nil => modo dev: sin tokens y sin exigir
	// sesión en las mutaciones.
	Signer *token.Signer

	Logger zerolog.Logger

	// Fuerza repos en memoria (también via PAWMED_STORAGE=memory).
	UseMemory bool

	// UsersRepo permite inyectar el repo de usuarios (tests, modo
	// memoria con seed). nil => se arma según el storage elegido.
	UsersRepo authn.Repository
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	cfgPath := opts.CfgPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg := opts.Cfg
	if cfg == nil {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			opts.Logger.Warn().Err(err).Msg("config ilegible, se sigue con env + fallbacks")
			loaded = &config.Config{}
		}
		cfg = loaded
	}

	requireAuth := opts.Signer.IsConfigured()
	if requireAuth {
		r.Use(middleware.AuthContext(opts.Signer))
	} else {
		r.Use(middleware.AuthContext(nil))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		patientRepo      patients.Repository
		consultationRepo consultations.Repository
		prescriptionRepo prescriptions.Repository
		usersRepo        authn.Repository
	)

	useMemory := opts.UseMemory || os.Getenv("PAWMED_STORAGE") == "memory"
	if useMemory {
		patientRepo = mem.NewPatientRepo()
		consultationRepo = mem.NewConsultationRepo()
		prescriptionRepo = mem.NewPrescriptionRepo()

		users := mem.NewUserRepo()
		if u := strings.TrimSpace(os.Getenv("PAWMED_DEV_USER")); u != "" {
			users.Seed(authn.User{Usuario: u, Rol: "admin"}, os.Getenv("PAWMED_DEV_PASSWORD"))
		}
		usersRepo = users
	} else {
		client := sheets.NewClient(httpclient.New(sheets.DefaultTimeout), opts.Logger)
		patientRepo = sheets.NewPatientsRepo(client, cfg.PatientsURL)
		consultationRepo = sheets.NewConsultationsRepo(client, cfg.ConsultationsURL)
		prescriptionRepo = sheets.NewPrescriptionsRepo(client, cfg.PrescriptionsURL)
		usersRepo = sheets.NewUsersRepo(client, cfg.AuthURL)
	}
	if opts.UsersRepo != nil {
		usersRepo = opts.UsersRepo
	}

	// Services por módulo
	consultationsSvc := consultations.NewService(consultationRepo)
	prescriptionsSvc := prescriptions.NewService(prescriptionRepo)
	// Orden de cascada: recetas primero, consultas después, al final
	// la ficha del paciente.
	patientsSvc := patients.NewService(patientRepo, prescriptionsSvc, consultationsSvc)

	var signer authn.TokenSigner
	if requireAuth {
		signer = opts.Signer
	}
	authnSvc := authn.NewService(usersRepo, signer)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc, requireAuth)
	consultations.RegisterRoutes(r, consultationsSvc, requireAuth)
	prescriptions.RegisterRoutes(r, prescriptionsSvc, requireAuth)
	authn.RegisterRoutes(r, authnSvc)
	report.RegisterRoutes(r, patientsSvc, consultationsSvc)

	registerConfigRoutes(r, cfg, cfgPath, requireAuth)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

type configStatus struct {
	HasPatientsURL      bool `json:"hasPatientsUrl"`
	HasConsultationsURL bool `json:"hasConsultationsUrl"`
	HasPrescriptionsURL bool `json:"hasPrescriptionsUrl"`
	HasAuthURL          bool `json:"hasAuthUrl"`
}

// registerConfigRoutes expone la configuración como objeto completo:
// GET devuelve flags de validez (no las URLs: pueden llevar tokens de
// despliegue), PUT persiste el objeto entero. Los cambios aplican en
// el próximo arranque; los repos se cablean al construir el router.
func registerConfigRoutes(r chi.Router, cfg *config.Config, cfgPath string, requireAuth bool) {
	r.Get("/api/config", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, configStatus{
			HasPatientsURL:      config.IsValidURL(cfg.PatientsURL),
			HasConsultationsURL: config.IsValidURL(cfg.ConsultationsURL),
			HasPrescriptionsURL: config.IsValidURL(cfg.PrescriptionsURL),
			HasAuthURL:          config.IsValidURL(cfg.AuthURL),
		})
	})

	r.Put("/api/config", func(w http.ResponseWriter, req *http.Request) {
		if requireAuth && !middleware.HasSession(req.Context()) {
			apierror.Write(w, http.StatusUnauthorized, "sesión requerida")
			return
		}

		var in config.Config
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			apierror.Write(w, http.StatusBadRequest, "JSON inválido")
			return
		}
		for _, u := range []string{in.PatientsURL, in.ConsultationsURL, in.PrescriptionsURL, in.AuthURL} {
			if strings.TrimSpace(u) != "" && !config.IsValidURL(u) {
				apierror.Write(w, http.StatusBadRequest, "URL inválida: "+u)
				return
			}
		}
		if err := config.Save(&in, cfgPath); err != nil {
			apierror.Write(w, http.StatusInternalServerError, "no se pudo guardar la configuración")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
