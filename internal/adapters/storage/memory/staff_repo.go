package memory

import (
	"context"
	"sort"

	"gym-management/internal/domain/persons"
	"gym-management/internal/domain/staff"
)

type staffRepo struct {
	s *Store
}

func (r *staffRepo) Create(ctx context.Context, e staff.Employee) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.emailTaken(e.Email, 0) {
		return 0, persons.ErrDuplicateEmail
	}

	r.s.nextPersonID++
	e.ID = r.s.nextPersonID
	r.s.employees[e.ID] = e
	return e.ID, nil
}

func (r *staffRepo) GetByID(ctx context.Context, id int64) (staff.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return staff.Employee{}, persons.ErrNotFound
	}
	return e, nil
}

func (r *staffRepo) List(ctx context.Context) ([]staff.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]staff.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *staffRepo) Update(ctx context.Context, e staff.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.employees[e.ID]
	if !ok {
		return persons.ErrNotFound
	}
	if r.s.emailTaken(e.Email, e.ID) {
		return persons.ErrDuplicateEmail
	}
	if e.PasswordHash == "" {
		e.PasswordHash = current.PasswordHash
	}

	r.s.employees[e.ID] = e
	return nil
}

func (r *staffRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return persons.ErrNotFound
	}
	delete(r.s.employees, id)
	return nil
}
