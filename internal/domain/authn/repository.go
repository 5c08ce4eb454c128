package authn

import "context"

// Repository valida credenciales contra la hoja de usuarios (action
// login). El password sale una sola vez hacia el store y no se
// retiene ni se loguea.
type Repository interface {
	Login(ctx context.Context, creds Credentials) (User, error)
}
