package dataset

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

// SheetsSource reads the readings worksheet of a Google spreadsheet. The
// first row of the range names the fields (date, ot, gospel, pope, ...).
type SheetsSource struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheetsSource builds the Sheets client once. Callers pass the
// credentials, usually option.WithCredentialsJSON with the service account
// key.
func NewSheetsSource(ctx context.Context, spreadsheetID, readRange string, opts ...option.ClientOption) (*SheetsSource, error) {
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}, opts...)

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsSource{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

func (ss *SheetsSource) Fetch(ctx context.Context) ([]reading.Record, error) {
	resp, err := ss.service.Spreadsheets.Values.
		Get(ss.spreadsheetID, ss.readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read from sheets: %w", err)
	}
	return FromRows(resp.Values), nil
}
