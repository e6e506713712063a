package dataset

import (
	"context"
	"fmt"

	"google.golang.org/api/option"

	"github.com/Nixie-Tech-LLC/biblemind/internal/config"
	"github.com/Nixie-Tech-LLC/biblemind/internal/db"
	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
	redisclient "github.com/Nixie-Tech-LLC/biblemind/internal/redis"
)

// Open builds the source selected by cfg.DatasetSource. The returned close
// function releases whatever connection the source holds.
func Open(ctx context.Context, cfg *config.Config) (reading.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.DatasetSource {
	case config.SourceSheets:
		src, err := NewSheetsSource(ctx, cfg.Sheet.ID, cfg.Sheet.Range,
			option.WithCredentialsJSON([]byte(cfg.GoogleCredentialsJSON)))
		if err != nil {
			return nil, nil, err
		}
		return src, noop, nil

	case config.SourceFile:
		return NewFileSource(cfg.File.Path, cfg.File.Sheet), noop, nil

	case config.SourceHTTP:
		src := NewHTTPSource(cfg.HTTP.URL)
		return src, src.Close, nil

	case config.SourceSpaces:
		src, err := NewSpacesSource(
			cfg.Spaces.Endpoint,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.Key,
			cfg.Spaces.AccessKey,
			cfg.Spaces.SecretKey,
		)
		if err != nil {
			return nil, nil, err
		}
		return src, noop, nil

	case config.SourceRedis:
		client, err := redisclient.NewClient(ctx,
			cfg.Redis.Address, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisSource(client, cfg.Redis.Key), client.Close, nil

	case config.SourcePostgres:
		conn, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(ctx, conn, cfg.Database.MigrationsPath); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return NewPostgresSource(db.NewStore(conn)), conn.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.DatasetSource)
}
