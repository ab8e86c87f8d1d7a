package memory

import (
	"context"
	"sort"

	"gym-management/internal/domain/equipment"
)

type equipmentRepo struct {
	s *Store
}

func (r *equipmentRepo) Create(ctx context.Context, e equipment.Equipment) (equipment.Equipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextEquipmentID++
	e.ID = r.s.nextEquipmentID
	if e.RegisteredAt.IsZero() {
		e.RegisteredAt = r.s.now()
	}
	r.s.equipos[e.ID] = e
	return e, nil
}

func (r *equipmentRepo) GetByID(ctx context.Context, id int64) (equipment.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.equipos[id]
	if !ok {
		return equipment.Equipment{}, equipment.ErrNotFound
	}
	return e, nil
}

func (r *equipmentRepo) List(ctx context.Context) ([]equipment.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]equipment.Equipment, 0, len(r.s.equipos))
	for _, e := range r.s.equipos {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *equipmentRepo) Update(ctx context.Context, e equipment.Equipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.equipos[e.ID]; !ok {
		return equipment.ErrNotFound
	}
	r.s.equipos[e.ID] = e
	return nil
}

func (r *equipmentRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.equipos[id]; !ok {
		return equipment.ErrNotFound
	}
	delete(r.s.equipos, id)
	return nil
}
