// Package staff gestiona el agregado empleado: persona base más datos laborales.
package staff

import (
	"time"

	"gym-management/internal/domain/persons"
)

// Employee es la vista compuesta persona + extensión laboral (usuarios ⋈ empleados).
type Employee struct {
	persons.Person

	CompanyRole string
	Salary      float64
	HiredAt     time.Time
}
