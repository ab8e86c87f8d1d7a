package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"gym-management/internal/domain/persons"
)

type testRepo struct {
	createCalls int
	updateCalls int

	nextID  int64
	byID    map[int64]Client
	failErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Client{}}
}

func (r *testRepo) Create(_ context.Context, c Client) (int64, error) {
	r.createCalls++
	if r.failErr != nil {
		return 0, r.failErr
	}
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return Client{}, persons.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(_ context.Context) ([]Client, error) {
	out := make([]Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) Update(_ context.Context, c Client) error {
	r.updateCalls++
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.byID[c.ID]; !ok {
		return persons.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return persons.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo)
	svc.hash = func(p string) (string, error) { return "hashed:" + p, nil }
	return svc
}

func validCreate() CreateInput {
	return CreateInput{
		FullName:   "Luis Rojas",
		Email:      "luis@gym.pe",
		Password:   "secreta",
		Phone:      "111222333",
		BirthDate:  time.Date(1995, 8, 20, 0, 0, 0, 0, time.UTC),
		Address:    "Jr. Lima 456",
		Membership: "mensual",
		Dynamic:    "funcional",
		StartsAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Create_DerivaFechaFin(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	c, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Kind != persons.KindClient {
		t.Fatalf("expected kind Cliente, got %q", c.Kind)
	}
	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if c.EndsAt == nil || !c.EndsAt.Equal(want) {
		t.Fatalf("fecha fin = %v, want %v", c.EndsAt, want)
	}
}

func TestService_Create_VIPSinFechaFin(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validCreate()
	in.Membership = "VIP"

	c, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Membership != MembershipVIP {
		t.Fatalf("expected vip, got %q", c.Membership)
	}
	if c.EndsAt != nil {
		t.Fatalf("vip no debe tener fecha fin, got %v", c.EndsAt)
	}
}

func TestService_Create_MembresiaInvalida(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validCreate()
	in.Membership = "semanal"

	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidMembershipType) {
		t.Fatalf("expected ErrInvalidMembershipType, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatal("tipo inválido no debe tocar el repo")
	}
}

func TestService_Create_InvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"nombre vacío", func(in *CreateInput) { in.FullName = "" }},
		{"password vacío", func(in *CreateInput) { in.Password = "" }},
		{"dinámica vacía", func(in *CreateInput) { in.Dynamic = " " }},
		{"sin fecha de inicio", func(in *CreateInput) { in.StartsAt = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTestRepo()
			svc := newTestService(repo)

			in := validCreate()
			tc.mutate(&in)

			if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if repo.createCalls != 0 {
				t.Fatal("la validación debe fallar antes de tocar el repo")
			}
		})
	}
}

func TestService_Update_RecalculaFechaFin(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := UpdateInput{
		ID:         created.ID,
		FullName:   created.FullName,
		Email:      created.Email,
		Phone:      created.Phone,
		BirthDate:  created.BirthDate,
		Address:    created.Address,
		Membership: "anual",
		Dynamic:    created.Dynamic,
		StartsAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	updated, err := svc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if updated.EndsAt == nil || !updated.EndsAt.Equal(want) {
		t.Fatalf("fecha fin = %v, want %v", updated.EndsAt, want)
	}
	if updated.PasswordHash != "" {
		t.Fatalf("password no enviada debe dejar hash vacío, got %q", updated.PasswordHash)
	}
}

func TestService_Update_DuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	repo.failErr = persons.ErrDuplicateEmail
	in := UpdateInput{
		ID:         created.ID,
		FullName:   created.FullName,
		Email:      "otro@gym.pe",
		Phone:      created.Phone,
		BirthDate:  created.BirthDate,
		Address:    created.Address,
		Membership: "mensual",
		Dynamic:    created.Dynamic,
		StartsAt:   created.StartsAt,
	}
	if _, err := svc.Update(context.Background(), in); !errors.Is(err, persons.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}
