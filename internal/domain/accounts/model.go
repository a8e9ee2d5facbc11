package accounts

// Credential es el par email/password de un usuario registrado.
// El password se guarda en texto plano: no hay hashing en este servicio.
type Credential struct {
	Email    string
	Password string
}

// APIKey asocia un email con su key estática.
type APIKey struct {
	Email string
	Key   string
}

// Seed es un usuario precargado al arrancar el proceso.
type Seed struct {
	Credential
	Key string
}

// DefaultSeed devuelve el usuario de pruebas con el que arranca el servicio.
func DefaultSeed() Seed {
	return Seed{
		Credential: Credential{
			Email:    "user@example.com",
			Password: "password123",
		},
		Key: "ea738148a1f19838e1c5d1413877f3691a3731380e733e877b0ae729",
	}
}
