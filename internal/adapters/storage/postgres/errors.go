package postgres

import (
	"errors"
	"fmt"

	"gym-management/internal/domain/persons"

	"github.com/jackc/pgx/v5/pgconn"
)

// código SQLSTATE de violación de unicidad
const uniqueViolation = "23505"

// classifyPersonErr traduce errores del motor a los sentinelas del dominio.
// Los servicios nunca inspeccionan códigos SQLSTATE directamente.
func classifyPersonErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return persons.ErrDuplicateEmail
	}
	return fmt.Errorf("storage: %w", err)
}
