package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gym-management/internal/domain/clients"
	"gym-management/internal/domain/persons"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) (int64, error) {
	var id int64
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		id, err = insertPerson(ctx, tx, c.Person)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO clientes (
				usuario_id, tipo_membresia, tipo_dinamica,
				fecha_inicio_membresia, fecha_fin_membresia
			) VALUES ($1,$2,$3,$4,$5)
		`, id, string(c.Membership), c.Dynamic, c.StartsAt, toNullTime(c.EndsAt))
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			u.id, u.nombre_completo, u.correo_electronico, u.telefono,
			u.fecha_nacimiento, u.direccion, u.tipo_usuario,
			c.tipo_membresia, c.tipo_dinamica,
			c.fecha_inicio_membresia, c.fecha_fin_membresia
		FROM usuarios u
		INNER JOIN clientes c ON c.usuario_id = u.id
		WHERE u.id = $1
	`, id)

	c, err := scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return clients.Client{}, persons.ErrNotFound
		}
		return clients.Client{}, fmt.Errorf("storage: %w", err)
	}
	return c, nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			u.id, u.nombre_completo, u.correo_electronico, u.telefono,
			u.fecha_nacimiento, u.direccion, u.tipo_usuario,
			c.tipo_membresia, c.tipo_dinamica,
			c.fecha_inicio_membresia, c.fecha_fin_membresia
		FROM usuarios u
		INNER JOIN clientes c ON c.usuario_id = u.id
		ORDER BY u.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := updatePerson(ctx, tx, c.Person); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			UPDATE clientes
			SET tipo_membresia = $2, tipo_dinamica = $3,
			    fecha_inicio_membresia = $4, fecha_fin_membresia = $5
			WHERE usuario_id = $1
		`, c.ID, string(c.Membership), c.Dynamic, c.StartsAt, toNullTime(c.EndsAt))
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		return nil
	})
}

func (r *ClientsRepo) Delete(ctx context.Context, id int64) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM clientes WHERE usuario_id = $1`, id); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		return deletePerson(ctx, tx, id)
	})
}

func scanClient(row rowScanner) (clients.Client, error) {
	var c clients.Client
	var kind, membership string
	var endsAt sql.NullTime
	if err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.BirthDate,
		&c.Address,
		&kind,
		&membership,
		&c.Dynamic,
		&c.StartsAt,
		&endsAt,
	); err != nil {
		return clients.Client{}, err
	}
	c.Kind = persons.Kind(kind)
	c.Membership = clients.MembershipType(membership)
	if endsAt.Valid {
		t := endsAt.Time
		c.EndsAt = &t
	}
	return c, nil
}

// fecha_fin_membresia es nullable: nil significa vip sin vencimiento
func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
