package repository

import (
	"context"
	"time"
)

// HistoryRepo handles balance snapshots.
type HistoryRepo struct {
	db DBTX
}

func NewHistoryRepo(db DBTX) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Record(ctx context.Context, p BalancePoint) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO balance_history(account_id, at, balance_cents)
	VALUES (?, ?, ?)
	ON CONFLICT(account_id, at) DO UPDATE SET balance_cents=excluded.balance_cents;
	`, p.AccountID, p.At, p.BalanceCents)
	return err
}

// ForAccount returns snapshots since the given time, oldest first.
func (r *HistoryRepo) ForAccount(ctx context.Context, accountID string, since time.Time) ([]BalancePoint, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT account_id, at, balance_cents
	FROM balance_history
	WHERE account_id = ? AND at >= ?
	ORDER BY at`, accountID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BalancePoint
	for rows.Next() {
		var p BalancePoint
		if err := rows.Scan(&p.AccountID, &p.At, &p.BalanceCents); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
