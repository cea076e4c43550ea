package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the statement surface a repository needs. Both *sql.DB and
// *sql.Tx satisfy it, so the same repository code runs against the pool or
// inside an open transaction. With sqlite's pool capped at one connection,
// transactional writes MUST go through a tx-bound repository: a pool-bound
// one would wait forever on the connection the transaction already holds.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Account represents an account row. Currency may be empty, meaning the
// application default; balances are integer cents.
type Account struct {
	ID           string
	Name         string
	Kind         string
	Currency     string
	BalanceCents int64
	UpdatedAt    time.Time
}

// BalancePoint is one balance_history row.
type BalancePoint struct {
	AccountID    string
	At           time.Time
	BalanceCents int64
}
