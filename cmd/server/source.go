package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/biblemind/internal/config"
	"github.com/Nixie-Tech-LLC/biblemind/internal/dataset"
	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

// InitSource selects and returns the configured dataset source
func InitSource(ctx context.Context, cfg *config.Config) (reading.Source, func()) {
	source, closeFn, err := dataset.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.DatasetSource).Msg("failed to initialize dataset source")
	}
	log.Info().Str("source", cfg.DatasetSource).Msg("using dataset source")

	return source, func() {
		if err := closeFn(); err != nil {
			log.Warn().Err(err).Str("source", cfg.DatasetSource).Msg("failed to close dataset source")
		}
	}
}
