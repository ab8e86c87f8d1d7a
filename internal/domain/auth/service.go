package auth

import (
	"context"
	"errors"
	"strings"

	"gym-management/internal/domain/persons"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials cubre tanto correo desconocido como contraseña
	// incorrecta: la respuesta nunca revela cuál de los dos falló.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// Credentials es la proyección de usuarios (⟕ clientes) usada para login.
type Credentials struct {
	PersonID     int64
	FullName     string
	Email        string
	PasswordHash string
	Phone        string
	Kind         persons.Kind
	// Membership viene del join con clientes; nil para empleados.
	Membership *string
}

type Repository interface {
	// FindByEmail devuelve persons.ErrNotFound si el correo no existe.
	FindByEmail(ctx context.Context, email string) (Credentials, error)
}

// Session es el resultado de un login exitoso.
type Session struct {
	Credentials
	Token string
}

type Service struct {
	repo   Repository
	tokens *TokenManager

	verify func(hash, password string) bool
}

func NewService(repo Repository, tokens *TokenManager) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		verify: VerifyPassword,
	}
}

// Login verifica la credencial y emite un token de sesión.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidInput
	}

	creds, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, persons.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if !s.verify(creds.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(creds.PersonID, creds.Email)
	if err != nil {
		return Session{}, err
	}

	return Session{Credentials: creds, Token: token}, nil
}
