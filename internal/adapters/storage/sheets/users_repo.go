package sheets

import (
	"context"
	"errors"
	"fmt"

	"github.com/medpaw02-hue/PawMed/internal/domain/authn"
	"github.com/medpaw02-hue/PawMed/internal/ports/store"
)

var userSchema = NewSchema("usuario", "rol")

// UsersRepo solo hace login contra la hoja de usuarios; este lado
// nunca la escribe. El password viaja una única vez en el payload del
// action login y no se retiene ni aparece en logs.
type UsersRepo struct {
	client *Client
	url    string
}

func NewUsersRepo(client *Client, url string) *UsersRepo {
	return &UsersRepo{client: client, url: url}
}

func (r *UsersRepo) Login(ctx context.Context, creds authn.Credentials) (authn.User, error) {
	if err := validEndpoint(r.url); err != nil {
		return authn.User{}, err
	}

	fields := map[string]any{
		"usuario":  creds.Usuario,
		"password": creds.Password,
	}
	env, err := r.client.Submit(ctx, r.url, fields, ActionLogin)
	if err != nil {
		return authn.User{}, err
	}
	if err := envelopeError(env); err != nil {
		// Un envelope de error del script en login es rechazo de
		// credenciales, salvo que ya venga tipado distinto.
		var storeErr *store.Error
		if errors.As(err, &storeErr) || errors.Is(err, store.ErrNotFound) {
			return authn.User{}, fmt.Errorf("%w: %s", authn.ErrInvalidCredentials, env.Message)
		}
		return authn.User{}, err
	}

	row := userSchema.Normalize(env.User)
	u := authn.User{Usuario: row["usuario"], Rol: row["rol"]}
	if u.Usuario == "" {
		return authn.User{}, fmt.Errorf("%w: respuesta sin usuario", authn.ErrInvalidCredentials)
	}
	return u, nil
}
