package authn

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenSigner emite el token de sesión post-login.
type TokenSigner interface {
	Sign(usuario, rol string) (string, error)
}

type Service struct {
	repo   Repository
	signer TokenSigner
}

func NewService(repo Repository, signer TokenSigner) *Service {
	return &Service{repo: repo, signer: signer}
}

// Login valida contra la hoja de usuarios y, si hay signer, emite un
// token de sesión. Sin signer (modo dev) la sesión sale sin token.
func (s *Service) Login(ctx context.Context, creds Credentials) (Session, error) {
	creds.Usuario = strings.TrimSpace(creds.Usuario)
	if creds.Usuario == "" || creds.Password == "" {
		return Session{}, ErrInvalidInput
	}

	u, err := s.repo.Login(ctx, creds)
	if err != nil {
		return Session{}, err
	}

	sess := Session{Usuario: u.Usuario, Rol: u.Rol}
	if s.signer != nil {
		token, err := s.signer.Sign(u.Usuario, u.Rol)
		if err != nil {
			return Session{}, err
		}
		sess.Token = token
	}
	return sess, nil
}
