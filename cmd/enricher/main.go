package main

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"locshare/internal/enrich"
	"locshare/internal/env"
	"locshare/internal/models"
	"locshare/internal/service"
	"locshare/internal/storage"
	"locshare/pkg/graceful"
	"locshare/pkg/kafkaclient"
	"locshare/pkg/location"
)

func main() {
	cfg, err := env.Load[env.EnricherConfig]()
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	log.Printf("Connecting to Kafka broker: %s on topic: %s with group ID: %s", cfg.Kafka.Broker, cfg.Kafka.Topic, cfg.Kafka.GroupID)

	consumer, err := kafkaclient.NewKafkaConsumer(cfg.Kafka.Topic, cfg.Kafka.GroupID, cfg.Kafka.Broker)
	if err != nil {
		log.Fatalf("Failed to create kafka consumer %v", err)
	}

	s3Service, err := storage.NewS3Service(cfg.Minio)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := s3Service.CreateBucket(ctx, cfg.Minio.ArchiveBucket, ""); err != nil {
		log.Fatal(err)
	}

	geocoder := location.NewClient(cfg.NominatimURL, cfg.UserAgent)
	pipeline := enrich.LocationPipeline(geocoder, s3Service, cfg.Minio.ArchiveBucket)

	consumer.StartConsuming(ctx)
	iterator := service.NewLocationIterator(consumer)

	items := make(chan *models.EnrichedLocation)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(items)
		for obj := range iterator.Objects(gctx) {
			select {
			case items <- models.NewEnrichedLocation(obj.Data):
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var stats enrich.Stats
	g.Go(func() error {
		stats = pipeline.Process(gctx, items)
		return nil
	})
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		log.Printf("Enricher stopped: %v", err)
	}

	consumer.Stop()
	log.Printf("Enricher finished: %d locations, %d with failures.", stats.Items, stats.Failures)
}
