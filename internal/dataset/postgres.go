package dataset

import (
	"context"

	"github.com/Nixie-Tech-LLC/biblemind/internal/db"
	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

// PostgresSource reads the daily_readings table, a mirror of the sheet kept
// in PostgreSQL. NULL columns are left out of the record.
type PostgresSource struct {
	store db.Store
}

func NewPostgresSource(store db.Store) *PostgresSource {
	return &PostgresSource{store: store}
}

func (ps *PostgresSource) Fetch(ctx context.Context) ([]reading.Record, error) {
	rows, err := ps.store.ListDailyReadings(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]reading.Record, 0, len(rows))
	for _, row := range rows {
		fields := map[string]any{}
		if row.Date.Valid {
			fields[reading.FieldDate] = row.Date.String
		}
		if row.OT.Valid {
			fields[reading.FieldOT] = row.OT.String
		}
		if row.Gospel.Valid {
			fields[reading.FieldGospel] = row.Gospel.String
		}
		if row.Pope.Valid {
			fields[reading.FieldPope] = row.Pope.String
		}
		records = append(records, reading.NewRecord(fields))
	}
	return records, nil
}
