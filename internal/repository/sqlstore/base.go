package sqlstore

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/metrics"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// NewBaseRepository creates a new base repository. m may be nil.
func NewBaseRepository(db *sqlx.DB, m *metrics.Metrics) BaseRepository {
	return BaseRepository{db: db, metrics: m}
}

// selectContext rebinds query for the driver in use, runs it and records
// the operation under op.
func (r *BaseRepository) selectContext(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := r.db.SelectContext(ctx, dest, r.db.Rebind(query), args...)
	r.metrics.ObserveDatabase(op, start, err)
	return err
}

func (r *BaseRepository) getContext(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := r.db.GetContext(ctx, dest, r.db.Rebind(query), args...)
	r.metrics.ObserveDatabase(op, start, err)
	return err
}
