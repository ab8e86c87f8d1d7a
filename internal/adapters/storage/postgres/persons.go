package postgres

import (
	"context"
	"fmt"

	"gym-management/internal/domain/persons"
)

// Statement set de la tabla usuarios. Los repos de empleados y clientes lo
// componen dentro de inTx pasando la transacción como Querier; el orden
// padre→hijo lo decide el repo que orquesta.

func insertPerson(ctx context.Context, q Querier, p persons.Person) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO usuarios (
			nombre_completo,
			correo_electronico,
			contrasena,
			telefono,
			fecha_nacimiento,
			direccion,
			tipo_usuario
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		p.FullName,
		p.Email,
		p.PasswordHash,
		p.Phone,
		p.BirthDate,
		p.Address,
		string(p.Kind),
	).Scan(&id)
	if err != nil {
		return 0, classifyPersonErr(err)
	}
	return id, nil
}

// updatePerson reemplaza todos los campos salvo tipo_usuario (inmutable) y la
// contraseña cuando llega vacía: COALESCE(NULLIF(...)) conserva el hash
// almacenado. Cero filas afectadas => persons.ErrNotFound.
func updatePerson(ctx context.Context, q Querier, p persons.Person) error {
	res, err := q.ExecContext(ctx, `
		UPDATE usuarios
		SET
			nombre_completo = $2,
			correo_electronico = $3,
			contrasena = COALESCE(NULLIF($4, ''), contrasena),
			telefono = $5,
			fecha_nacimiento = $6,
			direccion = $7
		WHERE id = $1
	`,
		p.ID,
		p.FullName,
		p.Email,
		p.PasswordHash,
		p.Phone,
		p.BirthDate,
		p.Address,
	)
	if err != nil {
		return classifyPersonErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return persons.ErrNotFound
	}
	return nil
}

func deletePerson(ctx context.Context, q Querier, id int64) error {
	res, err := q.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return persons.ErrNotFound
	}
	return nil
}
