package equipment

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("equipo no encontrado")

type Repository interface {
	// Create devuelve el registro completo: storage asigna id y fecha de registro.
	Create(ctx context.Context, e Equipment) (Equipment, error)
	GetByID(ctx context.Context, id int64) (Equipment, error)
	List(ctx context.Context) ([]Equipment, error)
	Update(ctx context.Context, e Equipment) error
	Delete(ctx context.Context, id int64) error
}
