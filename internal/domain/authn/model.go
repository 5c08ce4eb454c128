package authn

// User es la fila de la hoja de usuarios. Este core solo la lee para
// el login; nunca la muta.
type User struct {
	Usuario string
	Rol     string
}

type Credentials struct {
	Usuario  string
	Password string
}

// Session es el resultado de un login exitoso.
type Session struct {
	Token   string
	Usuario string
	Rol     string
}
