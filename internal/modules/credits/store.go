package credits

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_credits persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Consume atomically checks the monthly allowance and deducts one credit.
// It resets the counter to MonthlyAllowance when cycle_month is behind the
// current month. Returns ErrExhausted when 0 rows are updated (allowance
// spent or user row absent).
func (s *Store) Consume(ctx context.Context, uid string) error {
	month := time.Now().Format(monthFormat)

	tag, err := s.db.Exec(ctx, `
		UPDATE plan_credits SET
			credits_remaining = CASE WHEN cycle_month != $1 THEN $2 - 1 ELSE credits_remaining - 1 END,
			cycle_month = $1
		WHERE uid = $3 AND (cycle_month < $1 OR credits_remaining > 0)
	`, month, MonthlyAllowance, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExhausted
	}
	return nil
}

// EnsureUser inserts a plan_credits row for uid with the full monthly
// allowance. An existing row is left untouched (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_credits (uid, credits_remaining, cycle_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, MonthlyAllowance, time.Now().Format(monthFormat))
	return err
}

// Remaining reports how many credits uid has left this month. A user without
// a row, or whose row is from a previous month, has the full allowance.
func (s *Store) Remaining(ctx context.Context, uid string) (int, error) {
	var remaining int
	var month string
	err := s.db.QueryRow(ctx, `
		SELECT credits_remaining, cycle_month FROM plan_credits WHERE uid = $1
	`, uid).Scan(&remaining, &month)
	if errors.Is(err, pgx.ErrNoRows) {
		return MonthlyAllowance, nil
	}
	if err != nil {
		return 0, err
	}
	if month != time.Now().Format(monthFormat) {
		return MonthlyAllowance, nil
	}
	return remaining, nil
}
