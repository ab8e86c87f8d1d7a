package equipment

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Model       string
	Description string
	Status      string
	Weight      float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Equipment, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Model) == "" ||
		strings.TrimSpace(in.Status) == "" || in.Weight <= 0 {
		return Equipment{}, ErrInvalidInput
	}

	e := Equipment{
		Name:        strings.TrimSpace(in.Name),
		Model:       strings.TrimSpace(in.Model),
		Description: optional(in.Description),
		Status:      strings.TrimSpace(in.Status),
		Weight:      in.Weight,
	}

	return s.repo.Create(ctx, e)
}

type UpdateInput struct {
	ID           int64
	Name         string
	Model        string
	Description  string
	RegisteredAt time.Time
	Status       string
	Weight       float64
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (Equipment, error) {
	if in.ID <= 0 || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Model) == "" ||
		strings.TrimSpace(in.Description) == "" || in.RegisteredAt.IsZero() ||
		strings.TrimSpace(in.Status) == "" || in.Weight <= 0 {
		return Equipment{}, ErrInvalidInput
	}

	e := Equipment{
		ID:           in.ID,
		Name:         strings.TrimSpace(in.Name),
		Model:        strings.TrimSpace(in.Model),
		Description:  optional(in.Description),
		RegisteredAt: in.RegisteredAt,
		Status:       strings.TrimSpace(in.Status),
		Weight:       in.Weight,
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return Equipment{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Equipment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
