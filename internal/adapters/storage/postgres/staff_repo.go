package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gym-management/internal/domain/persons"
	"gym-management/internal/domain/staff"
)

type StaffRepo struct {
	db *sql.DB
}

func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

// Create inserta usuarios y empleados en una sola transacción. Si falla la
// extensión, el insert de la persona se revierte junto con ella.
func (r *StaffRepo) Create(ctx context.Context, e staff.Employee) (int64, error) {
	var id int64
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		id, err = insertPerson(ctx, tx, e.Person)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO empleados (usuario_id, rol_empresa, salario, fecha_ingreso)
			VALUES ($1,$2,$3,$4)
		`, id, e.CompanyRole, e.Salary, e.HiredAt)
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

func (r *StaffRepo) GetByID(ctx context.Context, id int64) (staff.Employee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			a.id, a.nombre_completo, a.correo_electronico, a.telefono,
			a.fecha_nacimiento, a.direccion, a.tipo_usuario,
			e.rol_empresa, e.salario::float8, e.fecha_ingreso
		FROM usuarios a
		INNER JOIN empleados e ON e.usuario_id = a.id
		WHERE a.id = $1
	`, id)

	e, err := scanEmployee(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return staff.Employee{}, persons.ErrNotFound
		}
		return staff.Employee{}, fmt.Errorf("storage: %w", err)
	}
	return e, nil
}

func (r *StaffRepo) List(ctx context.Context) ([]staff.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			a.id, a.nombre_completo, a.correo_electronico, a.telefono,
			a.fecha_nacimiento, a.direccion, a.tipo_usuario,
			e.rol_empresa, e.salario::float8, e.fecha_ingreso
		FROM usuarios a
		INNER JOIN empleados e ON e.usuario_id = a.id
		ORDER BY a.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	defer rows.Close()

	out := make([]staff.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update actualiza la persona primero: cero filas => NotFound y la extensión
// no se toca (la transacción se revierte).
func (r *StaffRepo) Update(ctx context.Context, e staff.Employee) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := updatePerson(ctx, tx, e.Person); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			UPDATE empleados
			SET rol_empresa = $2, salario = $3, fecha_ingreso = $4
			WHERE usuario_id = $1
		`, e.ID, e.CompanyRole, e.Salary, e.HiredAt)
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		return nil
	})
}

// Delete elimina extensión y persona en ese orden (integridad referencial).
func (r *StaffRepo) Delete(ctx context.Context, id int64) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM empleados WHERE usuario_id = $1`, id); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		return deletePerson(ctx, tx, id)
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (staff.Employee, error) {
	var e staff.Employee
	var kind string
	if err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.Email,
		&e.Phone,
		&e.BirthDate,
		&e.Address,
		&kind,
		&e.CompanyRole,
		&e.Salary,
		&e.HiredAt,
	); err != nil {
		return staff.Employee{}, err
	}
	e.Kind = persons.Kind(kind)
	return e, nil
}
