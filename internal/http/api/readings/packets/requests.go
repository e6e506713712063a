package packets

// REQUESTS FOR /daily-readings

// DailyReadingsQuery is the query string of GET /daily-readings. Date is
// DD-MM-YYYY; empty means today (UTC).
type DailyReadingsQuery struct {
	Date string `form:"date"`
}
