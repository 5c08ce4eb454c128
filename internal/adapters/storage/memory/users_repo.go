package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/medpaw02-hue/PawMed/internal/domain/authn"
)

type seededUser struct {
	user     authn.User
	password string
}

type UserRepo struct {
	mu      sync.RWMutex
	byLogin map[string]seededUser
}

// NewUserRepo crea un repo de usuarios en memoria. Solo para modo dev
// y tests: las credenciales se siembran con Seed, sin hash (la hoja
// real tampoco lo tiene).
func NewUserRepo() *UserRepo {
	return &UserRepo{
		byLogin: make(map[string]seededUser),
	}
}

func (r *UserRepo) Seed(u authn.User, password string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byLogin[u.Usuario] = seededUser{user: u, password: password}
}

func (r *UserRepo) Login(ctx context.Context, creds authn.Credentials) (authn.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	su, ok := r.byLogin[creds.Usuario]
	if !ok || su.password != creds.Password {
		return authn.User{}, fmt.Errorf("%w: usuario o password incorrectos", authn.ErrInvalidCredentials)
	}
	return su.user, nil
}
