package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"
)

// stubConn registra, en orden y normalizados, los statements ejecutados, para
// verificar la orquestación persona→extensión sin una base real.
type stubConn struct {
	stmts []string

	begins    int
	commits   int
	rollbacks int

	// failOn: un statement que contenga el substring falla.
	failOn string
	// zeroRowsOn: un exec que contenga el substring reporta 0 filas afectadas.
	zeroRowsOn string
	// nextID alimenta los RETURNING id.
	nextID int64
	// registeredAt alimenta RETURNING fecha_registro.
	registeredAt time.Time
}

var stubSeq atomic.Int64

func newStubDB() (*sql.DB, *stubConn) {
	conn := &stubConn{nextID: 1, registeredAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	name := fmt.Sprintf("stubpg%d", stubSeq.Add(1))
	sql.Register(name, &stubDriver{conn: conn})
	db, err := sql.Open(name, "stub")
	if err != nil {
		panic(err)
	}
	return db, conn
}

type stubDriver struct {
	conn *stubConn
}

func (d *stubDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func normalize(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

func (c *stubConn) record(query string) (string, error) {
	q := normalize(query)
	c.stmts = append(c.stmts, q)
	if c.failOn != "" && strings.Contains(q, c.failOn) {
		return q, fmt.Errorf("stub: fail on %q", c.failOn)
	}
	return q, nil
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, fmt.Errorf("stub: prepare not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	c.begins++
	return &stubTx{conn: c}, nil
}

// ExecContext implementa driver.ExecerContext.
func (c *stubConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	q, err := c.record(query)
	if err != nil {
		return nil, err
	}
	if c.zeroRowsOn != "" && strings.Contains(q, c.zeroRowsOn) {
		return driver.RowsAffected(0), nil
	}
	return driver.RowsAffected(1), nil
}

// QueryContext implementa driver.QueryerContext. Solo atiende los RETURNING
// de los inserts; los SELECT devuelven cero filas.
func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	q, err := c.record(query)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.Contains(q, "RETURNING id, fecha_registro"):
		return &stubRows{
			cols: []string{"id", "fecha_registro"},
			rows: [][]driver.Value{{c.nextID, c.registeredAt}},
		}, nil
	case strings.Contains(q, "RETURNING id"):
		return &stubRows{
			cols: []string{"id"},
			rows: [][]driver.Value{{c.nextID}},
		}, nil
	default:
		return &stubRows{cols: []string{"id"}}, nil
	}
}

type stubTx struct {
	conn *stubConn
}

func (t *stubTx) Commit() error {
	t.conn.commits++
	return nil
}

func (t *stubTx) Rollback() error {
	t.conn.rollbacks++
	return nil
}

type stubRows struct {
	cols []string
	rows [][]driver.Value
	idx  int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}
