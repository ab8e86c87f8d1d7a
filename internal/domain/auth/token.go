package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager emite JWTs firmados (HS256) para sesiones autenticadas.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate emite un token para la persona autenticada.
func (t *TokenManager) Generate(personID int64, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   t.issuer,
		"sub":   strconv.FormatInt(personID, 10),
		"email": email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse valida firma y vigencia y devuelve los claims.
func (t *TokenManager) Parse(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(t.issuer))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
