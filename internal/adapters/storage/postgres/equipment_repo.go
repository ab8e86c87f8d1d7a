package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gym-management/internal/domain/equipment"
)

type EquipmentRepo struct {
	db *sql.DB
}

func NewEquipmentRepo(db *sql.DB) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

// Create deja que la base asigne id y fecha_registro (DEFAULT now()).
func (r *EquipmentRepo) Create(ctx context.Context, e equipment.Equipment) (equipment.Equipment, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO equipos (nombre, modelo, descripcion, estado, peso)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, fecha_registro
	`,
		e.Name,
		e.Model,
		toNullString(e.Description),
		e.Status,
		e.Weight,
	).Scan(&e.ID, &e.RegisteredAt)
	if err != nil {
		return equipment.Equipment{}, fmt.Errorf("storage: %w", err)
	}
	return e, nil
}

func (r *EquipmentRepo) GetByID(ctx context.Context, id int64) (equipment.Equipment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, modelo, descripcion, fecha_registro, estado, peso::float8
		FROM equipos
		WHERE id = $1
	`, id)

	e, err := scanEquipment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return equipment.Equipment{}, equipment.ErrNotFound
		}
		return equipment.Equipment{}, fmt.Errorf("storage: %w", err)
	}
	return e, nil
}

func (r *EquipmentRepo) List(ctx context.Context) ([]equipment.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, modelo, descripcion, fecha_registro, estado, peso::float8
		FROM equipos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	defer rows.Close()

	out := make([]equipment.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EquipmentRepo) Update(ctx context.Context, e equipment.Equipment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE equipos
		SET nombre = $2, modelo = $3, descripcion = $4,
		    fecha_registro = $5, estado = $6, peso = $7
		WHERE id = $1
	`,
		e.ID,
		e.Name,
		e.Model,
		toNullString(e.Description),
		e.RegisteredAt,
		e.Status,
		e.Weight,
	)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return equipment.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return equipment.ErrNotFound
	}
	return nil
}

func scanEquipment(row rowScanner) (equipment.Equipment, error) {
	var e equipment.Equipment
	var desc sql.NullString
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Model,
		&desc,
		&e.RegisteredAt,
		&e.Status,
		&e.Weight,
	); err != nil {
		return equipment.Equipment{}, err
	}
	if desc.Valid {
		d := desc.String
		e.Description = &d
	}
	return e, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
