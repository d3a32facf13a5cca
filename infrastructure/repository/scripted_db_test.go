package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
)

const scriptedDriverName = "repository-scripted"

var scriptedDBs sync.Map

func init() {
	sql.Register(scriptedDriverName, scriptedDriver{})
}

// scriptedDB é um banco em memória que registra os comandos recebidos e responde com os scripts do teste
type scriptedDB struct {
	conn *postgres.Connection

	mu    sync.Mutex
	log   []string
	exec  func(query string, args []driver.NamedValue) (driver.Result, error)
	query func(query string, args []driver.NamedValue) (*scriptedRows, error)
}

func newScriptedDB(t *testing.T) *scriptedDB {
	t.Helper()

	s := &scriptedDB{}
	scriptedDBs.Store(t.Name(), s)

	db, err := sql.Open(scriptedDriverName, t.Name())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
		scriptedDBs.Delete(t.Name())
	})

	s.conn = &postgres.Connection{DB: db}
	return s
}

func (s *scriptedDB) record(statement string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = append(s.log, statement)
}

func (s *scriptedDB) statements() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.log...)
}

type scriptedDriver struct{}

func (scriptedDriver) Open(name string) (driver.Conn, error) {
	db, ok := scriptedDBs.Load(name)
	if !ok {
		return nil, driver.ErrBadConn
	}
	return &scriptedConn{db: db.(*scriptedDB)}, nil
}

type scriptedConn struct {
	db *scriptedDB
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	return nil, driver.ErrSkip
}

func (c *scriptedConn) Close() error { return nil }

func (c *scriptedConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *scriptedConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	c.db.record("BEGIN")
	return scriptedTx{db: c.db}, nil
}

func (c *scriptedConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.db.record(query)
	if c.db.exec == nil {
		return driver.RowsAffected(0), nil
	}
	return c.db.exec(query, args)
}

func (c *scriptedConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.db.record(query)
	if c.db.query == nil {
		return &scriptedRows{}, nil
	}
	return c.db.query(query, args)
}

type scriptedTx struct {
	db *scriptedDB
}

func (t scriptedTx) Commit() error {
	t.db.record("COMMIT")
	return nil
}

func (t scriptedTx) Rollback() error {
	t.db.record("ROLLBACK")
	return nil
}

type scriptedRows struct {
	columns []string
	values  [][]driver.Value
}

func (r *scriptedRows) Columns() []string { return r.columns }

func (r *scriptedRows) Close() error { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	if len(r.values) == 0 {
		return io.EOF
	}
	copy(dest, r.values[0])
	r.values = r.values[1:]
	return nil
}
