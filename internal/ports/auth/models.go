package auth

// Claims representa la información extraída del token de sesión.
type Claims struct {
	Usuario string
	Rol     string
}
