package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	connectAttempts = 10
	connectDelay    = 2 * time.Second
)

// Connect opens a PostgreSQL connection, retrying while the database comes up.
// It is meant for startup only; request handling never retries.
func Connect(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	var conn *sqlx.DB
	err := retry.Do(
		func() error {
			var err error
			conn, err = sqlx.ConnectContext(ctx, "postgres", databaseURL)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.Delay(connectDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Error().Err(err).
				Uint("attempt", n+1).
				Msgf("failed to connect to database, retrying in %s", connectDelay)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database after %d attempts: %w", connectAttempts, err)
	}

	log.Info().Msg("connected to database")
	return conn, nil
}

// RunMigrations finds all "*.up.sql" files in migrationsPath (sorted by name)
// and executes each one as a single statement. "*.down.sql" files are ignored.
func RunMigrations(ctx context.Context, conn *sqlx.DB, migrationsPath string) error {
	pattern := filepath.Join(migrationsPath, "*.up.sql")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to glob migrations: %w", err)
	}
	if len(files) == 0 {
		log.Warn().Str("path", migrationsPath).Msg("no migrations found")
		return nil
	}

	sort.Strings(files)

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration %q: %w", file, err)
		}
		if len(sqlBytes) == 0 {
			continue
		}
		if _, err := conn.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("error executing migration %q: %w", file, err)
		}
		log.Debug().Str("file", filepath.Base(file)).Msg("applied migration")
	}
	return nil
}
