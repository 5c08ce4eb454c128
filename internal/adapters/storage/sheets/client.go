package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/medpaw02-hue/PawMed/internal/platform/httpclient"
	"github.com/medpaw02-hue/PawMed/internal/ports/store"
)

const (
	// El script tarda en frío (arranque del contenedor de Apps Script);
	// 30s cubre el peor caso observado sin colgar la UI para siempre.
	DefaultTimeout = 30 * time.Second

	ActionUpsert = "upsert"
	ActionDelete = "delete"
	ActionLogin  = "login"
)

// Envelope es la respuesta de estado del script para escrituras.
type Envelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details string         `json:"details,omitempty"`
	User    map[string]any `json:"user,omitempty"`
}

// Client habla con endpoints estilo Apps Script: GET lista toda la hoja,
// POST escribe una fila completa con un campo de control "action".
// No guarda estado entre llamadas ni reintenta; cada fallo sube tipado.
type Client struct {
	http *httpclient.Client
	log  zerolog.Logger

	// Body vacío en una escritura cuenta como éxito. Es una rama
	// explícita (no un fallthrough) para poder testearla directo.
	emptyBodyMeansSuccess bool
}

func NewClient(hc *httpclient.Client, log zerolog.Logger) *Client {
	if hc == nil {
		hc = httpclient.New(DefaultTimeout)
	}
	return &Client{
		http:                  hc,
		log:                   log,
		emptyBodyMeansSuccess: true,
	}
}

// FetchAll trae todas las filas de la hoja como objetos crudos.
// El body puede venir como array JSON, como string JSON-escapado, como
// {"error": "..."} o como texto suelto. Texto no parseable => resultado
// vacío (falla suave: el script devuelve "[]" o basura en casos borde).
func (c *Client) FetchAll(ctx context.Context, endpoint string) ([]map[string]any, error) {
	body, err := c.http.GetText(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch: %w", err)
	}

	if err := classifyBody(body); err != nil {
		return nil, err
	}

	var anyVal any
	if err := json.Unmarshal([]byte(body), &anyVal); err != nil {
		c.log.Warn().Str("endpoint", endpoint).Msg("respuesta no-JSON al listar, se trata como vacío")
		return []map[string]any{}, nil
	}

	// El script a veces envuelve el JSON en un string.
	if s, ok := anyVal.(string); ok {
		if err := json.Unmarshal([]byte(s), &anyVal); err != nil {
			return []map[string]any{}, nil
		}
	}

	switch v := anyVal.(type) {
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if row, ok := item.(map[string]any); ok {
				out = append(out, row)
			}
		}
		return out, nil
	case map[string]any:
		if msg, ok := v["error"].(string); ok {
			return nil, &store.Error{Message: msg}
		}
		return []map[string]any{}, nil
	default:
		return []map[string]any{}, nil
	}
}

// Submit escribe una fila: {...fields, action}. El script matchea por id
// (reemplaza la fila completa o agrega una nueva) y siembra encabezados
// desde las keys del payload si la hoja está vacía.
func (c *Client) Submit(ctx context.Context, endpoint string, fields map[string]any, action string) (Envelope, error) {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["action"] = action

	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("sheets: marshal payload: %w", err)
	}

	body, err := c.http.PostText(ctx, endpoint, b)
	if err != nil {
		return Envelope{}, fmt.Errorf("sheets: submit: %w", err)
	}

	return c.parseEnvelope(endpoint, body)
}

// SubmitDeleteViaGet expresa el delete como GET con query params, para
// despliegues del script que solo aceptan GET.
func (c *Client) SubmitDeleteViaGet(ctx context.Context, endpoint, id string) (Envelope, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %q", store.ErrInvalidEndpoint, endpoint)
	}
	q := u.Query()
	q.Set("id", id)
	q.Set("action", ActionDelete)
	u.RawQuery = q.Encode()

	body, err := c.http.GetText(ctx, u.String())
	if err != nil {
		return Envelope{}, fmt.Errorf("sheets: delete via get: %w", err)
	}
	return c.parseEnvelope(endpoint, body)
}

func (c *Client) parseEnvelope(endpoint, body string) (Envelope, error) {
	if err := classifyBody(body); err != nil {
		return Envelope{}, err
	}

	if strings.TrimSpace(body) == "" {
		if c.emptyBodyMeansSuccess {
			return Envelope{Status: "success"}, nil
		}
		return Envelope{}, &store.Error{Message: "respuesta vacía del script"}
	}

	var env Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		// Texto suelto que no es JSON: se envuelve como éxito sintético
		// con el texto crudo, nunca se descarta en silencio.
		c.log.Warn().Str("endpoint", endpoint).Str("body", truncate(body, 200)).
			Msg("respuesta no-JSON del script en escritura")
		return Envelope{Status: "success", Message: strings.TrimSpace(body)}, nil
	}
	return env, nil
}

// classifyBody inspecciona el body como texto ANTES de parsear JSON.
func classifyBody(body string) error {
	t := strings.TrimSpace(body)
	if strings.HasPrefix(t, "<") {
		return store.ErrUpstreamMisconfigured
	}
	l := strings.ToLower(t)
	if strings.Contains(l, "ratelimit") || strings.Contains(l, "rate limit") {
		return store.ErrRateLimited
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
