package reading

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Source fetches the whole dataset. Implementations must not cache between
// calls; every lookup sees the dataset as it is at that moment.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// Result is the outcome of a lookup. Matched is false when Record is a
// fallback.
type Result struct {
	Record  Record
	Matched bool
}

type Service struct {
	source Source
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(source Source, opts ...Option) *Service {
	s := &Service{source: source, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup returns the reading for query (DD-MM-YYYY), or for the current UTC
// day when query is empty. An invalid query fails with ErrInvalidDateFormat
// before the dataset is fetched; fetch failures come back as *DataSourceError.
func (s *Service) Lookup(ctx context.Context, query string) (Result, error) {
	now := s.now()
	key, display := KeyFor(now), DisplayDate(now)

	if query != "" {
		k, err := ParseQueryDate(query)
		if err != nil {
			return Result{}, err
		}
		key, display = k, query
	}

	records, err := s.source.Fetch(ctx)
	if err != nil {
		return Result{}, &DataSourceError{Err: err}
	}

	if rec, ok := Match(key, records); ok {
		return Result{Record: rec, Matched: true}, nil
	}

	log.Debug().
		Str("key", string(key)).
		Int("records", len(records)).
		Msg("no reading for date, serving fallback")
	return Result{Record: Fallback(display)}, nil
}
