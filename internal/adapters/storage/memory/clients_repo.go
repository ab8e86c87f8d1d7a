package memory

import (
	"context"
	"sort"

	"gym-management/internal/domain/clients"
	"gym-management/internal/domain/persons"
)

type clientsRepo struct {
	s *Store
}

func (r *clientsRepo) Create(ctx context.Context, c clients.Client) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.emailTaken(c.Email, 0) {
		return 0, persons.ErrDuplicateEmail
	}

	r.s.nextPersonID++
	c.ID = r.s.nextPersonID
	r.s.clients[c.ID] = c
	return c.ID, nil
}

func (r *clientsRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return clients.Client{}, persons.ErrNotFound
	}
	return c, nil
}

func (r *clientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clients.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *clientsRepo) Update(ctx context.Context, c clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.clients[c.ID]
	if !ok {
		return persons.ErrNotFound
	}
	if r.s.emailTaken(c.Email, c.ID) {
		return persons.ErrDuplicateEmail
	}
	if c.PasswordHash == "" {
		c.PasswordHash = current.PasswordHash
	}

	r.s.clients[c.ID] = c
	return nil
}

func (r *clientsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[id]; !ok {
		return persons.ErrNotFound
	}
	delete(r.s.clients, id)
	return nil
}
