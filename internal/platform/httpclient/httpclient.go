package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// Los endpoints de Apps Script redirigen como parte de su operación
	// normal (302 hacia googleusercontent). Acotamos los saltos.
	MaxRedirects = 5
)

// Client envuelve *http.Client con helpers comunes para adapters.
// Devuelve el body crudo: la clasificación de contenido (HTML, texto de
// rate-limit, JSON) es responsabilidad de cada adapter.
type Client struct {
	HTTP *http.Client
}

// New crea un Client con timeout razonable y límite de redirects.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout:       timeout,
			CheckRedirect: redirectLimit,
		},
	}
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	c := New(timeout)
	if tr != nil {
		c.HTTP.Transport = tr
	}
	return c
}

func redirectLimit(req *http.Request, via []*http.Request) error {
	if len(via) >= MaxRedirects {
		return fmt.Errorf("stopped after %d redirects", MaxRedirects)
	}
	return nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// GetText hace un GET y devuelve el body como texto.
// Retorna *HTTPError si el status no es 2xx.
func (c *Client) GetText(ctx context.Context, rawURL string) (string, error) {
	return c.doText(ctx, http.MethodGet, rawURL, "", nil)
}

// PostText hace un POST con Content-Type text/plain;charset=utf-8.
// Apps Script hace content-sniffing del body, por eso NO se manda
// application/json aunque el payload sea JSON.
func (c *Client) PostText(ctx context.Context, rawURL string, payload []byte) (string, error) {
	return c.doText(ctx, http.MethodPost, rawURL, "text/plain;charset=utf-8", payload)
}

func (c *Client) doText(ctx context.Context, method, rawURL, contentType string, payload []byte) (string, error) {
	if c == nil || c.HTTP == nil {
		return "", errors.New("httpclient: nil client")
	}
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return "", fmt.Errorf("httpclient: new request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := readAtMost(resp.Body, 1<<20) // 1MB max

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	return string(raw), nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}
