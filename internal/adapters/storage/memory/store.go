// Package memory implementa los repositorios en memoria para modo dev y
// tests. Respeta la misma semántica que postgres: unicidad de correo sobre
// todas las personas, escrituras todo-o-nada y listados por id ascendente.
package memory

import (
	"sync"
	"time"

	"gym-management/internal/domain/auth"
	"gym-management/internal/domain/clients"
	"gym-management/internal/domain/equipment"
	"gym-management/internal/domain/staff"
)

// Store contiene las cuatro "tablas". Un solo mutex hace atómico cada
// write compuesto, igual que la transacción en postgres.
type Store struct {
	mu sync.RWMutex

	nextPersonID    int64
	nextEquipmentID int64

	employees map[int64]staff.Employee
	clients   map[int64]clients.Client
	equipos   map[int64]equipment.Equipment

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees: make(map[int64]staff.Employee),
		clients:   make(map[int64]clients.Client),
		equipos:   make(map[int64]equipment.Equipment),
		now:       time.Now,
	}
}

func (s *Store) Staff() staff.Repository {
	return &staffRepo{s: s}
}

func (s *Store) Clients() clients.Repository {
	return &clientsRepo{s: s}
}

func (s *Store) Equipment() equipment.Repository {
	return &equipmentRepo{s: s}
}

func (s *Store) Credentials() auth.Repository {
	return &credentialsRepo{s: s}
}

// emailTaken recorre ambas "tablas" de personas; exclude salta el propio
// registro en updates.
func (s *Store) emailTaken(email string, exclude int64) bool {
	for id, e := range s.employees {
		if id != exclude && e.Email == email {
			return true
		}
	}
	for id, c := range s.clients {
		if id != exclude && c.Email == email {
			return true
		}
	}
	return false
}
