package clients

import "context"

// Repository persiste el agregado cliente. Create/Update/Delete escriben
// usuarios y clientes como una unidad atómica: o ambas tablas o ninguna.
type Repository interface {
	Create(ctx context.Context, c Client) (int64, error)
	GetByID(ctx context.Context, id int64) (Client, error)
	List(ctx context.Context) ([]Client, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id int64) error
}
