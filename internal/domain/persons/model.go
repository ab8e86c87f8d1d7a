// Package persons define la identidad base compartida por empleados y clientes.
package persons

import (
	"errors"
	"time"
)

// Kind discrimina el tipo de usuario. Se fija al crear y no cambia después.
type Kind string

const (
	KindEmployee Kind = "Empleado"
	KindClient   Kind = "Cliente"
)

var (
	// ErrNotFound indica que el identificador referido no existe.
	ErrNotFound = errors.New("persona no encontrada")
	// ErrDuplicateEmail indica violación de unicidad del correo.
	ErrDuplicateEmail = errors.New("correo electrónico ya registrado")
)

// Person representa el registro base en la tabla usuarios.
type Person struct {
	ID       int64
	FullName string
	Email    string
	// PasswordHash es el hash bcrypt de la credencial. En updates, vacío
	// significa "conservar la contraseña almacenada".
	PasswordHash string
	Phone        string
	BirthDate    time.Time
	Address      string
	Kind         Kind
}
