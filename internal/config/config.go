package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Fallbacks de los endpoints publicados del Apps Script.
// Sirven para que una instalación nueva funcione sin archivo de config;
// cualquier despliegue serio los pisa vía archivo o env.
const (
	fallbackPatientsURL      = "https://script.google.com/macros/s/AKfycbxQ1pawmedPacientesDeploy/exec"
	fallbackConsultationsURL = "https://script.google.com/macros/s/AKfycbxQ2pawmedConsultasDeploy/exec"
	fallbackPrescriptionsURL = "https://script.google.com/macros/s/AKfycbxQ3pawmedRecetasDeploy/exec"
	fallbackAuthURL          = "https://script.google.com/macros/s/AKfycbxQ4pawmedAuthDeploy/exec"
)

// Config agrupa los cuatro endpoints del row-store. Se lee y se escribe
// como objeto completo; no hay actualización parcial de campos.
type Config struct {
	PatientsURL      string `mapstructure:"patientsUrl" json:"patientsUrl"`
	ConsultationsURL string `mapstructure:"consultationsUrl" json:"consultationsUrl"`
	PrescriptionsURL string `mapstructure:"prescriptionsUrl" json:"prescriptionsUrl"`
	AuthURL          string `mapstructure:"authUrl" json:"authUrl"`
}

// DefaultPath es la ubicación estándar del archivo persistido.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv("PAWMED_CONFIG")); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pawmed.json"
	}
	return filepath.Join(home, ".pawmed", "config.json")
}

// Load resuelve cada URL en orden: archivo persistido, override por env
// (PAWMED_PATIENTS_URL, etc.), constante de fallback. El archivo ausente
// no es error: una instalación nueva arranca solo con env + fallbacks.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	var persisted Config
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	} else if err := v.Unmarshal(&persisted); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := &Config{
		PatientsURL:      resolve(persisted.PatientsURL, "PAWMED_PATIENTS_URL", fallbackPatientsURL),
		ConsultationsURL: resolve(persisted.ConsultationsURL, "PAWMED_CONSULTATIONS_URL", fallbackConsultationsURL),
		PrescriptionsURL: resolve(persisted.PrescriptionsURL, "PAWMED_PRESCRIPTIONS_URL", fallbackPrescriptionsURL),
		AuthURL:          resolve(persisted.AuthURL, "PAWMED_AUTH_URL", fallbackAuthURL),
	}
	return cfg, nil
}

func resolve(persisted, envKey, fallback string) string {
	if s := strings.TrimSpace(persisted); s != "" {
		return s
	}
	if s := strings.TrimSpace(os.Getenv(envKey)); s != "" {
		return s
	}
	return fallback
}

// Save persiste el objeto completo en path (creando el directorio si hace
// falta). Escribe todos los campos aunque estén vacíos: la próxima carga
// con un campo vacío cae a env/fallback.
func Save(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create dir: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("patientsUrl", cfg.PatientsURL)
	v.Set("consultationsUrl", cfg.ConsultationsURL)
	v.Set("prescriptionsUrl", cfg.PrescriptionsURL)
	v.Set("authUrl", cfg.AuthURL)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// IsValidURL valida sintaxis solamente (no hay chequeo de alcance).
// Los repos rechazan operaciones contra URLs inválidas antes de tocar
// la red.
func IsValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
