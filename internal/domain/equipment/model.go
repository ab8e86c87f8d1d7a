// Package equipment gestiona el inventario de equipos del gimnasio.
package equipment

import "time"

// Equipment representa un equipo del inventario. Sin relación con personas.
type Equipment struct {
	ID    int64
	Name  string
	Model string
	// Description es opcional (nullable en storage).
	Description *string
	// RegisteredAt lo asigna storage por default cuando no se envía.
	RegisteredAt time.Time
	Status       string
	Weight       float64
}
