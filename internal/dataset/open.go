package dataset

import (
	"context"
	"fmt"
	"log"

	"matchmaker/internal/config"
	"matchmaker/internal/db"
)

// Open builds the source selected by cfg.DatasetSource.
func Open(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.DatasetSource {
	case config.SourceFile, "":
		return NewFileSource(cfg.DatasetPath), nil

	case config.SourceS3:
		src, err := NewS3Source(ctx, S3Options{
			Bucket:          cfg.S3Bucket,
			Key:             cfg.S3Key,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return src, nil

	case config.SourceRedis:
		src, err := NewRedisSource(cfg.RedisURL, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		return src, nil

	case config.SourcePostgres:
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Println("Migrations completed successfully")

		if cfg.IsDev() {
			if err := database.SeedDevRecords(ctx); err != nil {
				log.Printf("Warning: failed to seed dev records: %v", err)
			}
		}
		return NewPostgresSource(database), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.DatasetSource)
	}
}
