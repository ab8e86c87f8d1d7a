// Package postgres implementa los repositorios sobre database/sql con el
// driver pgx. Las escrituras persona+extensión comparten el helper inTx:
// adquisición con alcance, commit-o-rollback garantizado y liberación de la
// conexión en todos los caminos de salida.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool de conexiones a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Querier abstrae *sql.DB y *sql.Tx: el statement set de persona recibe el
// handle por parámetro explícito en vez de alcanzar un pool global.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txTimeout acota cada transacción; el rollback del defer cubre también la
// cancelación por timeout.
const txTimeout = 5 * time.Second

// inTx ejecuta fn dentro de una transacción. Si fn falla, el defer revierte;
// si fn retorna nil, se confirma. La conexión vuelve al pool en ambos casos.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
