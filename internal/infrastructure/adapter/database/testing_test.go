package database

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB returns a postgres-dialect DB that builds statements without a server
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost port=5432 user=ledger dbname=points sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

var errNoServer = errors.New("no server behind this pool")

// noServer answers every statement with errNoServer
type noServer struct{}

func (noServer) PrepareContext(context.Context, string) (*sql.Stmt, error) { return nil, errNoServer }
func (noServer) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoServer
}
func (noServer) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoServer
}
func (noServer) QueryRowContext(context.Context, string, ...any) *sql.Row { return nil }

// commitFailingPool hands out transactions whose COMMIT fails with commitErr
type commitFailingPool struct {
	noServer
	commitErr error
	begins    atomic.Int32
}

func (p *commitFailingPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	p.begins.Add(1)
	return &commitFailingTx{commitErr: p.commitErr}, nil
}

type commitFailingTx struct {
	noServer
	commitErr error
}

func (tx *commitFailingTx) Commit() error   { return tx.commitErr }
func (tx *commitFailingTx) Rollback() error { return nil }

// newCommitFailingDB returns a postgres-dialect DB over pool
func newCommitFailingDB(t *testing.T, pool *commitFailingPool) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}
