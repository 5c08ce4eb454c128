package token

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/medpaw02-hue/PawMed/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("token signer not configured")
	ErrInvalidToken  = errors.New("invalid session token")
)

const DefaultTTL = 8 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

// Signer emite y verifica tokens de sesión HS256. Implementa
// auth.Verifier para el middleware.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Signer{
		secret: []byte(strings.TrimSpace(secret)),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Signer) IsConfigured() bool {
	return s != nil && len(s.secret) > 0
}

func (s *Signer) Sign(usuario, rol string) (string, error) {
	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   usuario,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Usuario: usuario,
		Rol:     rol,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *Signer) Verify(ctx context.Context, tokenString string) (auth.Claims, error) {
	if !s.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return auth.Claims{}, errors.Join(ErrInvalidToken, err)
	}

	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || strings.TrimSpace(c.Usuario) == "" {
		return auth.Claims{}, ErrInvalidToken
	}
	return auth.Claims{Usuario: c.Usuario, Rol: c.Rol}, nil
}
