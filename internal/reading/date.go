package reading

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Key is the canonical YYYY-MM-DD form used to compare a query date with a
// record date. It is never sent back to callers.
type Key string

const (
	keyLayout     = "2006-01-02"
	displayLayout = "02-01-2006"

	querySeparator  = "-"
	recordSeparator = "/"
)

// InvalidDateFormatMessage is the client-facing text for a rejected query date.
const InvalidDateFormatMessage = "Invalid date format. Use DD-MM-YYYY."

// ErrInvalidDateFormat is returned when a caller supplied date is not a real
// calendar day written as DD-MM-YYYY.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ParseQueryDate normalizes a caller supplied DD-MM-YYYY date.
func ParseQueryDate(s string) (Key, error) {
	key, ok := parseDate(s, querySeparator)
	if !ok {
		return "", ErrInvalidDateFormat
	}
	return key, nil
}

// ParseRecordDate normalizes a dataset DD/MM/YYYY date. Spreadsheet cells
// often carry stray spaces, so those are trimmed first.
func ParseRecordDate(s string) (Key, bool) {
	return parseDate(strings.TrimSpace(s), recordSeparator)
}

// KeyFor returns the key of the UTC calendar day containing t.
func KeyFor(t time.Time) Key {
	return Key(t.UTC().Format(keyLayout))
}

// DisplayDate formats the UTC calendar day containing t as DD-MM-YYYY.
func DisplayDate(t time.Time) string {
	return t.UTC().Format(displayLayout)
}

// parseDate accepts day and month of one or two digits and a four digit year.
// time.Date normalizes overflow (31 February becomes 2 March), so a changed
// day or month means the input was not a real date.
func parseDate(s, sep string) (Key, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return "", false
	}

	day, ok := number(parts[0], 1, 2)
	if !ok {
		return "", false
	}
	month, ok := number(parts[1], 1, 2)
	if !ok {
		return "", false
	}
	year, ok := number(parts[2], 4, 4)
	if !ok || year == 0 {
		return "", false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return Key(fmt.Sprintf("%04d-%02d-%02d", year, month, day)), true
}

func number(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
