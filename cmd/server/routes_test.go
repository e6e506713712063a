package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/biblemind/internal/config"
	"github.com/Nixie-Tech-LLC/biblemind/internal/dataset"
	"github.com/Nixie-Tech-LLC/biblemind/internal/metrics"
	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

const testAPIKey = "test-key"

type countingSource struct {
	records []reading.Record
	err     error
	calls   int
}

func (s *countingSource) Fetch(context.Context) ([]reading.Record, error) {
	s.calls++
	return s.records, s.err
}

type panickingSource struct{}

func (panickingSource) Fetch(context.Context) ([]reading.Record, error) {
	panic("index out of range")
}

var testNow = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

func setupRouter(t *testing.T, source reading.Source) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		APIKey:         testAPIKey,
		AllowedOrigins: []string{"https://biblemind.netlify.app"},
	}
	service := reading.NewService(source, reading.WithClock(func() time.Time { return testNow }))

	r := gin.New()
	RegisterRoutes(r, cfg, service, metrics.New())
	return r
}

func fixtureSource(t *testing.T) *countingSource {
	t.Helper()
	records, err := dataset.Decode([]byte(`[
		{"date": "24/12/2024", "ot": "2 Samuel 7", "gospel": "Luke 1:67-79", "pope": "Vigil"},
		{"date": "25/12/2024", "ot": "Isaiah 52:7-10", "gospel": "John 1:1-18", "pope": "Christmas", "psalm": "98"},
		{"ot": "Isaiah 52:7-10", "gospel": "25-12-2024", "pope": "no date at all"},
		{"date": "25-12-2024", "ot": "hyphenated record date"},
		{"date": 45651, "ot": "serial date"}
	]`))
	require.NoError(t, err)
	return &countingSource{records: records}
}

func get(r http.Handler, target, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestDailyReadings_MatchedRecord(t *testing.T) {
	src := fixtureSource(t)
	r := setupRouter(t, src)

	w := get(r, "/daily-readings?date=25-12-2024", testAPIKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"date": "25/12/2024",
		"ot": "Isaiah 52:7-10",
		"gospel": "John 1:1-18",
		"pope": "Christmas",
		"psalm": "98"
	}`, w.Body.String())
	assert.Equal(t, 1, src.calls)
}

func TestDailyReadings_FallbackForRequestedDate(t *testing.T) {
	r := setupRouter(t, fixtureSource(t))

	w := get(r, "/daily-readings?date=01-01-2099", testAPIKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"ot": "No Old Testament reading for 01-01-2099.",
		"gospel": "No Gospel reading for 01-01-2099.",
		"pope": "No Pope reflection for 01-01-2099.",
		"date": "01-01-2099"
	}`, w.Body.String())
}

func TestDailyReadings_FallbackForToday(t *testing.T) {
	r := setupRouter(t, fixtureSource(t))

	for _, target := range []string{"/daily-readings", "/daily-readings?date="} {
		w := get(r, target, testAPIKey)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "15-10-2026", body["date"])
		assert.Equal(t, "No Gospel reading for 15-10-2026.", body["gospel"])
	}
}

func TestDailyReadings_TodayMatches(t *testing.T) {
	records, err := dataset.Decode([]byte(`[{"date": "15/10/2026", "ot": "Romans 1"}]`))
	require.NoError(t, err)
	r := setupRouter(t, &countingSource{records: records})

	w := get(r, "/daily-readings", testAPIKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date": "15/10/2026", "ot": "Romans 1"}`, w.Body.String())
}

func TestDailyReadings_InvalidDate(t *testing.T) {
	for _, date := range []string{"31-02-2024", "2024-12-25", "25/12/2024", "tomorrow", "32-01-2024"} {
		t.Run(date, func(t *testing.T) {
			src := fixtureSource(t)
			r := setupRouter(t, src)

			w := get(r, "/daily-readings?date="+date, testAPIKey)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": "Invalid date format. Use DD-MM-YYYY."}`, w.Body.String())
			assert.Equal(t, 0, src.calls)
		})
	}
}

func TestDailyReadings_Unauthorized(t *testing.T) {
	for _, key := range []string{"", "wrong-key"} {
		for _, target := range []string{"/daily-readings", "/daily-readings?date=25-12-2024", "/daily-readings?date=31-02-2024"} {
			src := fixtureSource(t)
			r := setupRouter(t, src)

			w := get(r, target, key)

			assert.Equal(t, http.StatusUnauthorized, w.Code, target)
			assert.JSONEq(t, `{"error": "Invalid API Key"}`, w.Body.String())
			assert.Equal(t, 0, src.calls)
		}
	}
}

func TestDailyReadings_SkipsMalformedRecords(t *testing.T) {
	records, err := dataset.Decode([]byte(`[
		{"ot": "looks like Christmas", "gospel": "25/12/2024"},
		{"date": "", "ot": "blank"},
		{"date": "25-12-2024", "ot": "wrong separator"}
	]`))
	require.NoError(t, err)
	r := setupRouter(t, &countingSource{records: records})

	w := get(r, "/daily-readings?date=25-12-2024", testAPIKey)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "25-12-2024", body["date"])
	assert.Equal(t, "No Old Testament reading for 25-12-2024.", body["ot"])
}

func TestDailyReadings_SourceError(t *testing.T) {
	r := setupRouter(t, &countingSource{err: errors.New("failed to read from sheets: quota exceeded")})

	w := get(r, "/daily-readings?date=25-12-2024", testAPIKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "failed to read from sheets: quota exceeded"}`, w.Body.String())
}

func TestDailyReadings_UnexpectedPanic(t *testing.T) {
	r := setupRouter(t, panickingSource{})

	w := get(r, "/daily-readings", testAPIKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "index out of range"}`, w.Body.String())
}

func TestDailyReadings_Idempotent(t *testing.T) {
	r := setupRouter(t, fixtureSource(t))

	first := get(r, "/daily-readings?date=24-12-2024", testAPIKey)
	second := get(r, "/daily-readings?date=24-12-2024", testAPIKey)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestPublicEndpoints(t *testing.T) {
	r := setupRouter(t, fixtureSource(t))

	w := get(r, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())

	get(r, "/daily-readings?date=25-12-2024", testAPIKey)
	w = get(r, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `biblemind_reading_lookups_total{outcome="matched"} 1`)
}

func TestCORS(t *testing.T) {
	r := setupRouter(t, fixtureSource(t))

	req := httptest.NewRequest(http.MethodOptions, "/daily-readings", nil)
	req.Header.Set("Origin", "https://biblemind.netlify.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-API-Key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://biblemind.netlify.app", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/daily-readings", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("X-API-Key", testAPIKey)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
