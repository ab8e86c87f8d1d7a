package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gym-management/internal/domain/auth"
	"gym-management/internal/domain/persons"
)

type CredentialsRepo struct {
	db *sql.DB
}

func NewCredentialsRepo(db *sql.DB) *CredentialsRepo {
	return &CredentialsRepo{db: db}
}

// FindByEmail proyecta usuarios ⟕ clientes: tipo_membresia viene NULL para
// empleados.
func (r *CredentialsRepo) FindByEmail(ctx context.Context, email string) (auth.Credentials, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			u.id, u.nombre_completo, u.correo_electronico, u.contrasena,
			u.telefono, u.tipo_usuario, c.tipo_membresia
		FROM usuarios u
		LEFT JOIN clientes c ON c.usuario_id = u.id
		WHERE u.correo_electronico = $1
	`, email)

	var creds auth.Credentials
	var kind string
	var membership sql.NullString
	if err := row.Scan(
		&creds.PersonID,
		&creds.FullName,
		&creds.Email,
		&creds.PasswordHash,
		&creds.Phone,
		&kind,
		&membership,
	); err != nil {
		if err == sql.ErrNoRows {
			return auth.Credentials{}, persons.ErrNotFound
		}
		return auth.Credentials{}, fmt.Errorf("storage: %w", err)
	}

	creds.Kind = persons.Kind(kind)
	if membership.Valid {
		m := membership.String
		creds.Membership = &m
	}
	return creds, nil
}
