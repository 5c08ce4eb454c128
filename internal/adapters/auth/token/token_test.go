package token

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSigner_SignAndVerify(t *testing.T) {
	s := NewSigner("super-secreto", time.Hour)

	tok, err := s.Sign("vet1", "admin")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := s.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Usuario != "vet1" || claims.Rol != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSigner_ExpiredToken(t *testing.T) {
	s := NewSigner("super-secreto", time.Minute)

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	tok, err := s.Sign("vet1", "admin")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := s.Verify(context.Background(), tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestSigner_WrongSecret(t *testing.T) {
	a := NewSigner("secreto-a", time.Hour)
	b := NewSigner("secreto-b", time.Hour)

	tok, err := a.Sign("vet1", "admin")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	if _, err := b.Verify(context.Background(), tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken with wrong secret, got %v", err)
	}
}

func TestSigner_NotConfigured(t *testing.T) {
	var s *Signer
	if s.IsConfigured() {
		t.Fatalf("nil signer must not be configured")
	}

	empty := NewSigner("   ", 0)
	if empty.IsConfigured() {
		t.Fatalf("blank secret must not be configured")
	}
	if _, err := empty.Sign("vet1", "admin"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSigner_GarbageToken(t *testing.T) {
	s := NewSigner("super-secreto", time.Hour)
	if _, err := s.Verify(context.Background(), "no-es-un-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
