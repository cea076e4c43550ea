package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/jask/jaskwallet/internal/database/repository"
)

// SeedDemo populates a fresh database with demo accounts and a month of
// balance history so the UI has something to show. Idempotent: it does
// nothing once any account exists.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewAccountRepo(db).Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	seeds := []repository.Account{
		{ID: uuid.NewString(), Name: "Spending", Kind: "spending", Currency: "", BalanceCents: 184_250},
		{ID: uuid.NewString(), Name: "Savings", Kind: "savings", Currency: "", BalanceCents: 1_250_000},
		{ID: uuid.NewString(), Name: "Cold storage", Kind: "crypto", Currency: "BTC", BalanceCents: 4_200},
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		accounts := repository.NewAccountRepo(tx)
		history := repository.NewHistoryRepo(tx)
		start := Now().AddDate(0, 0, -30)
		for _, a := range seeds {
			if err := accounts.Upsert(ctx, a); err != nil {
				return err
			}
			// Deterministic walk back from the current balance.
			balance := a.BalanceCents
			for day := 30; day >= 0; day-- {
				at := start.AddDate(0, 0, 30-day)
				drift := int64((day*day)%7-3) * (a.BalanceCents / 200)
				if err := history.Record(ctx, repository.BalancePoint{
					AccountID:    a.ID,
					At:           at.Truncate(24 * time.Hour),
					BalanceCents: balance - drift,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
