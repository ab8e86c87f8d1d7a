package clients

import (
	"time"

	"gym-management/internal/domain/persons"
)

// Client es la vista compuesta persona + datos de membresía (usuarios ⋈ clientes).
type Client struct {
	persons.Person

	Membership MembershipType
	// Dynamic clasifica la dinámica de entrenamiento contratada (texto libre).
	Dynamic string
	StartsAt time.Time
	// EndsAt nil significa membresía sin vencimiento (vip). Siempre se deriva
	// de (Membership, StartsAt); nunca lo aporta el caller.
	EndsAt *time.Time
}
