// Package auth maneja credenciales: hashing bcrypt y emisión de tokens de sesión.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword genera el hash bcrypt que se persiste en lugar de la
// contraseña en claro.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara credencial contra hash almacenado.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
