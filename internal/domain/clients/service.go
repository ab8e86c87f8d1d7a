package clients

import (
	"context"
	"errors"
	"strings"
	"time"

	"gym-management/internal/domain/auth"
	"gym-management/internal/domain/persons"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	hash func(string) (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		hash: auth.HashPassword,
	}
}

type CreateInput struct {
	FullName   string
	Email      string
	Password   string
	Phone      string
	BirthDate  time.Time
	Address    string
	Membership string
	Dynamic    string
	StartsAt   time.Time
}

// Create valida, resuelve el tipo de membresía y deriva la fecha de fin antes
// de cualquier acceso a storage; un tipo inválido aborta sin escribir nada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Client, error) {
	if err := validateFields(in.FullName, in.Email, in.Phone, in.Address, in.Dynamic); err != nil {
		return Client{}, err
	}
	if in.Password == "" || in.BirthDate.IsZero() || in.StartsAt.IsZero() {
		return Client{}, ErrInvalidInput
	}

	membership, err := ParseMembershipType(in.Membership)
	if err != nil {
		return Client{}, err
	}
	endsAt, err := MembershipEnd(membership, in.StartsAt)
	if err != nil {
		return Client{}, err
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return Client{}, err
	}

	c := Client{
		Person: persons.Person{
			FullName:     strings.TrimSpace(in.FullName),
			Email:        strings.TrimSpace(in.Email),
			PasswordHash: hash,
			Phone:        strings.TrimSpace(in.Phone),
			BirthDate:    in.BirthDate,
			Address:      strings.TrimSpace(in.Address),
			Kind:         persons.KindClient,
		},
		Membership: membership,
		Dynamic:    strings.TrimSpace(in.Dynamic),
		StartsAt:   in.StartsAt,
		EndsAt:     endsAt,
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return Client{}, err
	}
	c.ID = id
	return c, nil
}

type UpdateInput struct {
	ID       int64
	FullName string
	Email    string
	// Password opcional: vacío conserva la contraseña almacenada.
	Password   string
	Phone      string
	BirthDate  time.Time
	Address    string
	Membership string
	Dynamic    string
	StartsAt   time.Time
}

// Update recalcula siempre la fecha de fin a partir del par (tipo, inicio)
// recibido; nunca se acepta como input del caller.
func (s *Service) Update(ctx context.Context, in UpdateInput) (Client, error) {
	if err := validateFields(in.FullName, in.Email, in.Phone, in.Address, in.Dynamic); err != nil {
		return Client{}, err
	}
	if in.ID <= 0 || in.BirthDate.IsZero() || in.StartsAt.IsZero() {
		return Client{}, ErrInvalidInput
	}

	membership, err := ParseMembershipType(in.Membership)
	if err != nil {
		return Client{}, err
	}
	endsAt, err := MembershipEnd(membership, in.StartsAt)
	if err != nil {
		return Client{}, err
	}

	hash := ""
	if in.Password != "" {
		h, err := s.hash(in.Password)
		if err != nil {
			return Client{}, err
		}
		hash = h
	}

	c := Client{
		Person: persons.Person{
			ID:           in.ID,
			FullName:     strings.TrimSpace(in.FullName),
			Email:        strings.TrimSpace(in.Email),
			PasswordHash: hash,
			Phone:        strings.TrimSpace(in.Phone),
			BirthDate:    in.BirthDate,
			Address:      strings.TrimSpace(in.Address),
			Kind:         persons.KindClient,
		},
		Membership: membership,
		Dynamic:    strings.TrimSpace(in.Dynamic),
		StartsAt:   in.StartsAt,
		EndsAt:     endsAt,
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

// Delete elimina extensión y persona. Misma política que empleados:
// persons.ErrNotFound si el ID no existe.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return persons.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func validateFields(fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrInvalidInput
		}
	}
	return nil
}
