package model

import "database/sql"

// DailyReading is one row of the daily_readings table. Text columns are
// nullable because the table mirrors a hand-edited sheet.
type DailyReading struct {
	Position int            `db:"position"`
	Date     sql.NullString `db:"date"`
	OT       sql.NullString `db:"ot"`
	Gospel   sql.NullString `db:"gospel"`
	Pope     sql.NullString `db:"pope"`
}
