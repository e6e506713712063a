// exposes a Store interface that is passed to the dataset layer
package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/biblemind/internal/model"
)

type Store interface {
	ListDailyReadings(ctx context.Context) ([]model.DailyReading, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}

// ListDailyReadings returns every row in sheet order.
func (s *pgStore) ListDailyReadings(ctx context.Context) ([]model.DailyReading, error) {
	var rows []model.DailyReading
	err := s.db.SelectContext(ctx, &rows,
		`SELECT position, date, ot, gospel, pope FROM daily_readings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily readings: %w", err)
	}
	return rows, nil
}
