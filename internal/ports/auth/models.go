package auth

// Claims representa la identidad resuelta a partir de la API key.
// UserID es el email del dueño de la key.
type Claims struct {
	UserID string
}
