// Package repository holds the wallet's sqlite read model.
package repository

import (
	"context"
)

// AccountRepo handles accounts.
type AccountRepo struct {
	db DBTX
}

func NewAccountRepo(db DBTX) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) Upsert(ctx context.Context, a Account) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO accounts(id, name, kind, currency, balance_cents, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 kind=excluded.kind,
	 currency=excluded.currency,
	 balance_cents=excluded.balance_cents,
	 updated_at=CURRENT_TIMESTAMP;
	`, a.ID, a.Name, a.Kind, a.Currency, a.BalanceCents)
	return err
}

func (r *AccountRepo) List(ctx context.Context) ([]Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, kind, currency, balance_cents, updated_at FROM accounts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Kind, &a.Currency, &a.BalanceCents, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SetBalance updates an account balance; the caller records history
// separately when it wants a snapshot.
func (r *AccountRepo) SetBalance(ctx context.Context, id string, cents int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET balance_cents = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		cents, id)
	return err
}

// Count returns the number of accounts.
func (r *AccountRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n)
	return n, err
}
