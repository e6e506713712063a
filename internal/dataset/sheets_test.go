package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestSheetsSource(t *testing.T, handler http.HandlerFunc) *SheetsSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	src, err := NewSheetsSource(context.Background(), "sheet-123", "Sheet1",
		option.WithEndpoint(server.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return src
}

func TestSheetsSource_Fetch(t *testing.T) {
	var gotPath string
	src := newTestSheetsSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"range": "Sheet1!A1:D3",
			"majorDimension": "ROWS",
			"values": [
				["date", "ot", "gospel", "pope"],
				["25/12/2024", "Isaiah 52:7-10", "John 1:1-18", "Christmas"],
				["26/12/2024", "Acts 6:8-10"]
			]
		}`))
	})

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, strings.HasSuffix(gotPath, "/spreadsheets/sheet-123/values/Sheet1"), gotPath)
	assert.Equal(t, "25/12/2024", *records[0].Date)
	assert.Equal(t, "Christmas", *records[0].Pope)
	assert.Nil(t, records[1].Gospel)
}

func TestSheetsSource_Error(t *testing.T) {
	src := newTestSheetsSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
	})

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read from sheets")
}
