package staff

import (
	"context"
	"errors"
	"testing"
	"time"

	"gym-management/internal/domain/persons"
)

// testRepo implementa Repository en memoria con contadores de llamadas.
type testRepo struct {
	createCalls int
	updateCalls int
	deleteCalls int

	nextID  int64
	byID    map[int64]Employee
	failErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Employee{}}
}

func (r *testRepo) Create(_ context.Context, e Employee) (int64, error) {
	r.createCalls++
	if r.failErr != nil {
		return 0, r.failErr
	}
	r.nextID++
	e.ID = r.nextID
	r.byID[e.ID] = e
	return e.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return Employee{}, persons.ErrNotFound
	}
	return e, nil
}

func (r *testRepo) List(_ context.Context) ([]Employee, error) {
	out := make([]Employee, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}

func (r *testRepo) Update(_ context.Context, e Employee) error {
	r.updateCalls++
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.byID[e.ID]; !ok {
		return persons.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	r.deleteCalls++
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
		FullName:    "Ana Torres",
		Email:       "ana@gym.pe",
		Password:    "secreta",
		Phone:       "999888777",
		BirthDate:   time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Address:     "Av. Siempre Viva 123",
		CompanyRole: "Entrenador",
		Salary:      1800,
		HiredAt:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Create(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	e, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID != 1 {
		t.Fatalf("expected id 1, got %d", e.ID)
	}
	if e.Kind != persons.KindEmployee {
		t.Fatalf("expected kind Empleado, got %q", e.Kind)
	}
	if e.PasswordHash != "hashed:secreta" {
		t.Fatalf("password sin hashear: %q", e.PasswordHash)
	}
}

func TestService_Create_InvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"nombre vacío", func(in *CreateInput) { in.FullName = "  " }},
		{"correo vacío", func(in *CreateInput) { in.Email = "" }},
		{"password vacío", func(in *CreateInput) { in.Password = "" }},
		{"salario cero", func(in *CreateInput) { in.Salary = 0 }},
		{"salario negativo", func(in *CreateInput) { in.Salary = -100 }},
		{"sin fecha de nacimiento", func(in *CreateInput) { in.BirthDate = time.Time{} }},
		{"sin fecha de ingreso", func(in *CreateInput) { in.HiredAt = time.Time{} }},
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
				t.Fatalf("la validación debe fallar antes de tocar el repo (%d llamadas)", repo.createCalls)
			}
		})
	}
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	repo.failErr = persons.ErrDuplicateEmail
	svc := newTestService(repo)

	if _, err := svc.Create(context.Background(), validCreate()); !errors.Is(err, persons.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := UpdateInput{
		ID:          42,
		FullName:    "Ana Torres",
		Email:       "ana@gym.pe",
		Phone:       "999888777",
		BirthDate:   time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Address:     "Av. Siempre Viva 123",
		CompanyRole: "Entrenador",
		Salary:      2000,
		HiredAt:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if _, err := svc.Update(context.Background(), in); !errors.Is(err, persons.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Update_PasswordOpcional(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := UpdateInput{
		ID:          created.ID,
		FullName:    "Ana Torres",
		Email:       "ana@gym.pe",
		Password:    "", // conserva la almacenada
		Phone:       "999888777",
		BirthDate:   created.BirthDate,
		Address:     "Av. Siempre Viva 123",
		CompanyRole: "Administrador",
		Salary:      2500,
		HiredAt:     created.HiredAt,
	}
	updated, err := svc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.PasswordHash != "" {
		t.Fatalf("hash debe ir vacío para conservar la contraseña, got %q", updated.PasswordHash)
	}
	if updated.CompanyRole != "Administrador" || updated.Salary != 2500 {
		t.Fatalf("campos no actualizados: %+v", updated)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	if err := svc.Delete(context.Background(), 0); !errors.Is(err, persons.ErrNotFound) {
		t.Fatalf("id inválido debe devolver ErrNotFound, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatal("id inválido no debe tocar el repo")
	}

	created, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, persons.ErrNotFound) {
		t.Fatalf("segundo delete debe devolver ErrNotFound, got %v", err)
	}
}
