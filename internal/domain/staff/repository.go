package staff

import "context"

// Repository persiste el agregado empleado. Create/Update/Delete escriben
// usuarios y empleados como una unidad atómica: o ambas tablas o ninguna.
// Update con PasswordHash vacío conserva la contraseña almacenada.
type Repository interface {
	Create(ctx context.Context, e Employee) (int64, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id int64) error
}
