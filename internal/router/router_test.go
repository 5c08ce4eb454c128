package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medpaw02-hue/PawMed/internal/adapters/auth/token"
	mem "github.com/medpaw02-hue/PawMed/internal/adapters/storage/memory"
	"github.com/medpaw02-hue/PawMed/internal/domain/authn"
	"github.com/medpaw02-hue/PawMed/internal/router"
)

func devServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(router.NewRouter(router.Options{
		CfgPath:   filepath.Join(t.TempDir(), "config.json"),
		Logger:    zerolog.Nop(),
		UseMemory: true,
	}))
}

func TestHTTP_EndToEnd_ClinicalFlow(t *testing.T) {
	ts := devServer(t)
	defer ts.Close()

	// 1) Arranque: lista de pacientes vacía
	{
		st, body := doReq(t, ts.URL, "GET", "/api/patients", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list patients, got %d body=%s", st, string(body))
		}
		var list []map[string]any
		_ = json.Unmarshal(body, &list)
		if len(list) != 0 {
			t.Fatalf("expected empty patient list, got %d", len(list))
		}
	}

	// 2) Alta de paciente (sin id => se asigna)
	patientID := createResource(t, ts.URL, "/api/patients", map[string]any{
		"nombre":      "Milo",
		"especie":     "canino",
		"raza":        "mestizo",
		"propietario": "Ana Pérez",
		"telefono":    "3001234567",
	})

	// 3) Consulta para el paciente
	consultaID := createResource(t, ts.URL, "/api/consultations", map[string]any{
		"pacienteId":  patientID,
		"motivo":      "control anual",
		"temperatura": "38.5",
		"peso":        "12.3",
		"valor":       "45000",
	})

	// 4) Receta ligada a la consulta
	recetaID := createResource(t, ts.URL, "/api/prescriptions", map[string]any{
		"pacienteId":   patientID,
		"consultaId":   consultaID,
		"receta":       "Amoxicilina 250mg",
		"indicaciones": "cada 12 horas por 7 días",
	})
	if recetaID == "" {
		t.Fatalf("expected receta id")
	}

	// 5) Filtro por paciente
	{
		st, body := doReq(t, ts.URL, "GET", "/api/consultations?pacienteId="+patientID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 filtered consultations, got %d body=%s", st, string(body))
		}
		var list []map[string]any
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 {
			t.Fatalf("expected 1 consultation for paciente, got %d", len(list))
		}
	}

	// 6) Edición del paciente por PUT (fila entera)
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/patients/"+patientID, "", map[string]any{
			"nombre":      "Milo",
			"especie":     "canino",
			"propietario": "Ana Pérez",
			"notas":       "castrado en 2025",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update patient, got %d body=%s", st, string(body))
		}
	}

	// 7) PDF de historia clínica
	{
		req, _ := http.NewRequest("GET", ts.URL+"/api/patients/"+patientID+"/report", nil)
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("report request: %v", err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 report, got %d", res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		pdf, _ := io.ReadAll(res.Body)
		if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
			t.Fatalf("expected PDF body, got %d bytes", len(pdf))
		}
	}

	// 8) Borrado del paciente: cascada receta + consulta + ficha
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/patients/"+patientID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 cascade delete, got %d body=%s", st, string(body))
		}
		var report struct {
			DependentsDeleted int  `json:"dependentsDeleted"`
			DependentsTotal   int  `json:"dependentsTotal"`
			PatientDeleted    bool `json:"patientDeleted"`
		}
		_ = json.Unmarshal(body, &report)
		if report.DependentsDeleted != 2 || report.DependentsTotal != 2 || !report.PatientDeleted {
			t.Fatalf("unexpected cascade report: %+v body=%s", report, string(body))
		}
	}

	// 9) Nada queda atrás
	for _, path := range []string{"/api/patients", "/api/consultations", "/api/prescriptions"} {
		st, body := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 %s, got %d", path, st)
		}
		var list []map[string]any
		_ = json.Unmarshal(body, &list)
		if len(list) != 0 {
			t.Fatalf("expected %s empty after cascade, got %d body=%s", path, len(list), string(body))
		}
	}
}

func TestHTTP_DeleteMissingPatient_Is404(t *testing.T) {
	ts := devServer(t)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "DELETE", "/api/patients/no-existe", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", st, string(body))
	}
}

func TestHTTP_InvalidPatientPayload_Is400(t *testing.T) {
	ts := devServer(t)
	defer ts.Close()

	// sin nombre ni propietario => 400 por validación
	st, _ := doReq(t, ts.URL, "POST", "/api/patients", "", map[string]any{
		"especie": "felino",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/patients", "", map[string]any{
		"nombre":      "Luna",
		"especie":     "felino",
		"propietario": "Ana",
		"email":       "no-es-email",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", st)
	}
}

func TestHTTP_SessionRequired_WhenSignerConfigured(t *testing.T) {
	users := mem.NewUserRepo()
	users.Seed(authn.User{Usuario: "vet1", Rol: "admin"}, "secreto")

	ts := httptest.NewServer(router.NewRouter(router.Options{
		CfgPath:   filepath.Join(t.TempDir(), "config.json"),
		Logger:    zerolog.Nop(),
		UseMemory: true,
		UsersRepo: users,
		Signer:    token.NewSigner("clave-de-test", time.Hour),
	}))
	defer ts.Close()

	// 1) Mutación sin sesión => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/patients", "", map[string]any{
			"nombre": "Milo", "especie": "canino", "propietario": "Ana",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session, got %d", st)
		}
	}

	// 2) Lectura sin sesión sigue abierta
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/patients", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 read without session, got %d", st)
		}
	}

	// 3) Login con credenciales malas => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/login", "", map[string]any{
			"usuario": "vet1", "password": "mala",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad credentials, got %d", st)
		}
	}

	// 4) Login OK => token
	var tok string
	{
		st, body := doReq(t, ts.URL, "POST", "/api/login", "", map[string]any{
			"usuario": "vet1", "password": "secreto",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			Token   string `json:"token"`
			Usuario string `json:"usuario"`
			Rol     string `json:"rol"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Token == "" || resp.Usuario != "vet1" || resp.Rol != "admin" {
			t.Fatalf("unexpected login response: %+v", resp)
		}
		tok = resp.Token
	}

	// 5) Con Bearer la mutación pasa
	{
		st, body := doReq(t, ts.URL, "POST", "/api/patients", tok, map[string]any{
			"nombre": "Milo", "especie": "canino", "propietario": "Ana",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 with session, got %d body=%s", st, string(body))
		}
	}

	// 6) Token basura no cuenta como sesión
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/patients", "token-falso", map[string]any{
			"nombre": "Milo", "especie": "canino", "propietario": "Ana",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with garbage token, got %d", st)
		}
	}
}

func TestHTTP_ConfigEndpoints(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	ts := httptest.NewServer(router.NewRouter(router.Options{
		CfgPath:   cfgPath,
		Logger:    zerolog.Nop(),
		UseMemory: true,
	}))
	defer ts.Close()

	// 1) GET expone flags de validez, nunca las URLs
	{
		st, body := doReq(t, ts.URL, "GET", "/api/config", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get config, got %d", st)
		}
		var flags map[string]bool
		if err := json.Unmarshal(body, &flags); err != nil {
			t.Fatalf("config response is not flags: %v body=%s", err, string(body))
		}
		// Con fallbacks cargados todos los endpoints figuran configurados.
		for _, k := range []string{"hasPatientsUrl", "hasConsultationsUrl", "hasPrescriptionsUrl", "hasAuthUrl"} {
			if !flags[k] {
				t.Fatalf("expected %s true, got %v", k, flags)
			}
		}
	}

	// 2) PUT con URL inválida => 400 y nada persiste
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/config", "", map[string]any{
			"patientsUrl": "no-es-una-url",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid url, got %d", st)
		}
		if _, err := os.Stat(cfgPath); !os.IsNotExist(err) {
			t.Fatalf("config file must not exist after rejected PUT")
		}
	}

	// 3) PUT válido persiste el objeto completo
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/config", "", map[string]any{
			"patientsUrl":      "https://script.google.com/macros/s/nuevo/exec",
			"consultationsUrl": "https://script.google.com/macros/s/nuevo2/exec",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put config, got %d body=%s", st, string(body))
		}
		raw, err := os.ReadFile(cfgPath)
		if err != nil {
			t.Fatalf("config file not written: %v", err)
		}
		var saved map[string]any
		_ = json.Unmarshal(raw, &saved)
		if saved["patientsurl"] == nil && saved["patientsUrl"] == nil {
			t.Fatalf("persisted config missing patients url: %s", string(raw))
		}
	}
}

func createResource(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, "", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, bearer string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
