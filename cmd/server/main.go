package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/go-chi/httplog/v2"

	"locshare/internal/catalog"
	"locshare/internal/env"
	"locshare/internal/server"
	"locshare/internal/storage"
	"locshare/pkg/graceful"
	"locshare/pkg/kafkaclient"
)

func main() {
	cfg, err := env.Load[env.ServerConfig]()
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	logger := httplog.NewLogger("locshare", httplog.Options{
		JSON:            cfg.LogJSON,
		LogLevel:        slog.LevelInfo,
		Concise:         true,
		QuietDownRoutes: []string{"/healthz", "/metrics"},
		QuietDownPeriod: 10 * time.Second,
	})

	db, err := storage.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		log.Fatal(err)
	}

	s3Service, err := storage.NewS3Service(cfg.Minio)
	if err != nil {
		log.Fatal(err)
	}

	publisher := kafkaclient.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic)
	defer publisher.Close()

	catalogs := catalog.NewService(db, s3Service, cfg.Minio.CatalogBucket,
		catalog.WithDefaultLanguage(cfg.DefaultLanguage),
		catalog.WithLogger(logger.Logger),
	)

	srv := server.NewServer(cfg.Addr, catalogs, db,
		server.WithPublisher(publisher),
		server.WithLogger(logger),
		server.WithAllowedOrigins(cfg.AllowedOrigins),
	)
	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("Server stopped.")
}
