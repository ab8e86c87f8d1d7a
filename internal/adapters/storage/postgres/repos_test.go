package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gym-management/internal/domain/clients"
	"gym-management/internal/domain/equipment"
	"gym-management/internal/domain/persons"
	"gym-management/internal/domain/staff"
)

func testEmployee() staff.Employee {
	return staff.Employee{
		Person: persons.Person{
			FullName:     "Ana Torres",
			Email:        "ana@gym.pe",
			PasswordHash: "$2a$10$hash",
			Phone:        "999888777",
			BirthDate:    time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
			Address:      "Av. Siempre Viva 123",
			Kind:         persons.KindEmployee,
		},
		CompanyRole: "Entrenador",
		Salary:      1800,
		HiredAt:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func testClient() clients.Client {
	starts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ends := starts.AddDate(0, 1, 0)
	return clients.Client{
		Person: persons.Person{
			FullName:     "Luis Rojas",
			Email:        "luis@gym.pe",
			PasswordHash: "$2a$10$hash",
			Phone:        "111222333",
			BirthDate:    time.Date(1995, 8, 20, 0, 0, 0, 0, time.UTC),
			Address:      "Jr. Lima 456",
			Kind:         persons.KindClient,
		},
		Membership: clients.MembershipMonthly,
		Dynamic:    "funcional",
		StartsAt:   starts,
		EndsAt:     &ends,
	}
}

func indexOf(stmts []string, substr string) int {
	for i, s := range stmts {
		if strings.Contains(s, substr) {
			return i
		}
	}
	return -1
}

func TestStaffRepo_Create_PersonaAntesQueExtension(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()
	conn.nextID = 42

	id, err := NewStaffRepo(db).Create(context.Background(), testEmployee())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}

	person := indexOf(conn.stmts, "INSERT INTO usuarios")
	ext := indexOf(conn.stmts, "INSERT INTO empleados")
	if person == -1 || ext == -1 || person > ext {
		t.Fatalf("orden incorrecto de inserts: %v", conn.stmts)
	}
	if conn.begins != 1 || conn.commits != 1 {
		t.Fatalf("begins=%d commits=%d, want 1/1", conn.begins, conn.commits)
	}
}

func TestStaffRepo_Create_RevierteSiFallaExtension(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()
	conn.failOn = "INSERT INTO empleados"

	if _, err := NewStaffRepo(db).Create(context.Background(), testEmployee()); err == nil {
		t.Fatal("expected error")
	}
	if conn.commits != 0 {
		t.Fatalf("no debe haber commit, got %d", conn.commits)
	}
	if conn.rollbacks != 1 {
		t.Fatalf("rollbacks = %d, want 1", conn.rollbacks)
	}
}

func TestStaffRepo_Update_NotFoundCortaAntesDeExtension(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()
	conn.zeroRowsOn = "UPDATE usuarios"

	e := testEmployee()
	e.ID = 42
	err := NewStaffRepo(db).Update(context.Background(), e)
	if !errors.Is(err, persons.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if indexOf(conn.stmts, "UPDATE empleados") != -1 {
		t.Fatalf("la extensión no debe tocarse cuando la persona no existe: %v", conn.stmts)
	}
	if conn.commits != 0 || conn.rollbacks != 1 {
		t.Fatalf("commits=%d rollbacks=%d, want 0/1", conn.commits, conn.rollbacks)
	}
}

func TestStaffRepo_Delete_ExtensionAntesQuePersona(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()

	if err := NewStaffRepo(db).Delete(context.Background(), 42); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	ext := indexOf(conn.stmts, "DELETE FROM empleados")
	person := indexOf(conn.stmts, "DELETE FROM usuarios")
	if ext == -1 || person == -1 || ext > person {
		t.Fatalf("orden incorrecto de deletes: %v", conn.stmts)
	}
	if conn.commits != 1 {
		t.Fatalf("commits = %d, want 1", conn.commits)
	}
}

func TestStaffRepo_Delete_PersonaInexistente(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()
	conn.zeroRowsOn = "DELETE FROM usuarios"

	err := NewStaffRepo(db).Delete(context.Background(), 99)
	if !errors.Is(err, persons.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if conn.commits != 0 {
		t.Fatalf("no debe haber commit, got %d", conn.commits)
	}
}

func TestClientsRepo_Create_PersonaAntesQueExtension(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()
	conn.nextID = 7

	id, err := NewClientsRepo(db).Create(context.Background(), testClient())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}

	person := indexOf(conn.stmts, "INSERT INTO usuarios")
	ext := indexOf(conn.stmts, "INSERT INTO clientes")
	if person == -1 || ext == -1 || person > ext {
		t.Fatalf("orden incorrecto de inserts: %v", conn.stmts)
	}
	if conn.commits != 1 {
		t.Fatalf("commits = %d, want 1", conn.commits)
	}
}

func TestClientsRepo_Update_NotFoundCortaAntesDeExtension(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()
	conn.zeroRowsOn = "UPDATE usuarios"

	c := testClient()
	c.ID = 7
	err := NewClientsRepo(db).Update(context.Background(), c)
	if !errors.Is(err, persons.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if indexOf(conn.stmts, "UPDATE clientes") != -1 {
		t.Fatalf("la extensión no debe tocarse cuando la persona no existe: %v", conn.stmts)
	}
}

func TestEquipmentRepo_Create_ReturningDefaults(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()
	conn.nextID = 3

	created, err := NewEquipmentRepo(db).Create(context.Background(), equipment.Equipment{
		Name:   "Prensa de pierna",
		Model:  "PL-900",
		Status: "operativo",
		Weight: 120,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("id = %d, want 3", created.ID)
	}
	if !created.RegisteredAt.Equal(conn.registeredAt) {
		t.Fatalf("fecha_registro = %v, want %v", created.RegisteredAt, conn.registeredAt)
	}
}

func TestEquipmentRepo_Update_NotFound(t *testing.T) {
	db, conn := newStubDB()
	defer db.Close()
	conn.zeroRowsOn = "UPDATE equipos"

	err := NewEquipmentRepo(db).Update(context.Background(), equipment.Equipment{
		ID:           9,
		Name:         "Prensa",
		Model:        "PL-900",
		RegisteredAt: time.Now(),
		Status:       "operativo",
		Weight:       120,
	})
	if !errors.Is(err, equipment.ErrNotFound) {
		t.Fatalf("expected equipment.ErrNotFound, got %v", err)
	}
}
