package memory

import (
	"context"
	"strings"

	"gym-management/internal/domain/auth"
	"gym-management/internal/domain/persons"
)

type credentialsRepo struct {
	s *Store
}

func (r *credentialsRepo) FindByEmail(ctx context.Context, email string) (auth.Credentials, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.employees {
		if strings.EqualFold(e.Email, email) {
			return auth.Credentials{
				PersonID:     e.ID,
				FullName:     e.FullName,
				Email:        e.Email,
				PasswordHash: e.PasswordHash,
				Phone:        e.Phone,
				Kind:         e.Kind,
			}, nil
		}
	}
	for _, c := range r.s.clients {
		if strings.EqualFold(c.Email, email) {
			membership := string(c.Membership)
			return auth.Credentials{
				PersonID:     c.ID,
				FullName:     c.FullName,
				Email:        c.Email,
				PasswordHash: c.PasswordHash,
				Phone:        c.Phone,
				Kind:         c.Kind,
				Membership:   &membership,
			}, nil
		}
	}
	return auth.Credentials{}, persons.ErrNotFound
}
