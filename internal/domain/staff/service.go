package staff

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
	FullName    string
	Email       string
	Password    string
	Phone       string
	BirthDate   time.Time
	Address     string
	CompanyRole string
	Salary      float64
	HiredAt     time.Time
}

// Create valida el set completo de campos antes de tocar storage y delega la
// escritura atómica usuarios+empleados al repositorio.
func (s *Service) Create(ctx context.Context, in CreateInput) (Employee, error) {
	if err := validateFields(in.FullName, in.Email, in.Phone, in.Address, in.CompanyRole); err != nil {
		return Employee{}, err
	}
	if in.Password == "" || in.Salary <= 0 || in.BirthDate.IsZero() || in.HiredAt.IsZero() {
		return Employee{}, ErrInvalidInput
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return Employee{}, err
	}

	e := Employee{
		Person: persons.Person{
			FullName:     strings.TrimSpace(in.FullName),
			Email:        strings.TrimSpace(in.Email),
			PasswordHash: hash,
			Phone:        strings.TrimSpace(in.Phone),
			BirthDate:    in.BirthDate,
			Address:      strings.TrimSpace(in.Address),
			Kind:         persons.KindEmployee,
		},
		CompanyRole: strings.TrimSpace(in.CompanyRole),
		Salary:      in.Salary,
		HiredAt:     in.HiredAt,
	}

	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return Employee{}, err
	}
	e.ID = id
	return e, nil
}

type UpdateInput struct {
	ID       int64
	FullName string
	Email    string
	// Password opcional: vacío conserva la contraseña almacenada.
	Password    string
	Phone       string
	BirthDate   time.Time
	Address     string
	CompanyRole string
	Salary      float64
	HiredAt     time.Time
}

// Update reemplaza todos los campos del empleado salvo la contraseña cuando
// no se envía. Devuelve persons.ErrNotFound si el ID no existe, sin tocar
// la tabla de extensión.
func (s *Service) Update(ctx context.Context, in UpdateInput) (Employee, error) {
	if err := validateFields(in.FullName, in.Email, in.Phone, in.Address, in.CompanyRole); err != nil {
		return Employee{}, err
	}
	if in.ID <= 0 || in.Salary <= 0 || in.BirthDate.IsZero() || in.HiredAt.IsZero() {
		return Employee{}, ErrInvalidInput
	}

	hash := ""
	if in.Password != "" {
		h, err := s.hash(in.Password)
		if err != nil {
			return Employee{}, err
		}
		hash = h
	}

	e := Employee{
		Person: persons.Person{
			ID:           in.ID,
			FullName:     strings.TrimSpace(in.FullName),
			Email:        strings.TrimSpace(in.Email),
			PasswordHash: hash,
			Phone:        strings.TrimSpace(in.Phone),
			BirthDate:    in.BirthDate,
			Address:      strings.TrimSpace(in.Address),
			Kind:         persons.KindEmployee,
		},
		CompanyRole: strings.TrimSpace(in.CompanyRole),
		Salary:      in.Salary,
		HiredAt:     in.HiredAt,
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

// Delete elimina extensión y persona. persons.ErrNotFound si el ID no existe.
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
