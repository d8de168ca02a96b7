package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootForge_Go/internal/database/generated"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

// txHelper bundles a transaction with queries bound to it.
type txHelper struct {
	tx pgx.Tx
	q  *generated.Queries
}

// beginTx starts a transaction. Use SafeRollback in defer to ensure cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*txHelper, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &txHelper{tx: tx, q: q.WithTx(tx)}, nil
}

func (h *txHelper) Commit(ctx context.Context) error {
	return h.tx.Commit(ctx)
}

// priceToFloat8 stores an absent price as NULL.
func priceToFloat8(p domain.Price) pgtype.Float8 {
	gp, ok := p.GP()
	return pgtype.Float8{Float64: gp, Valid: ok}
}

func float8ToPrice(f pgtype.Float8) domain.Price {
	if !f.Valid {
		return domain.Price{}
	}
	return domain.PriceOf(f.Float64)
}

func toTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func parseContainerUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, id)
	}
	return u, nil
}

// isForeignKeyViolation reports whether err is a violation of the named constraint.
// An empty constraint matches any foreign key violation.
func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeForeignKeyViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func int32Of(v int) int32 {
	const maxInt32 = 1<<31 - 1
	switch {
	case v > maxInt32:
		return maxInt32
	case v < -maxInt32-1:
		return -maxInt32 - 1
	}
	return int32(v)
}
