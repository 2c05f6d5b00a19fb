package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"locshare/internal/catalog"
	"locshare/internal/env"
	"locshare/internal/keys"
	"locshare/internal/storage"
	"locshare/pkg/graceful"
)

func main() {
	cfg, err := env.Load[env.SeederConfig]()
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	start := time.Now()
	bucketName := cfg.Minio.CatalogBucket
	fmt.Printf("Seeding translation catalogs into %q...\n", bucketName)

	s3Service, err := storage.NewS3Service(cfg.Minio)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := s3Service.CreateBucket(ctx, bucketName, ""); err != nil {
		log.Fatal(err)
	}

	objects := make(chan storage.Object)
	go func() {
		defer close(objects)
		for _, lang := range catalog.BuiltinLanguages() {
			table, _ := catalog.Builtin(lang)
			select {
			case objects <- storage.Object{Key: keys.Catalog(lang), Value: table}:
			case <-ctx.Done():
				return
			}
		}
	}()
	written := s3Service.StoreFromChannel(ctx, bucketName, objects, cfg.Overwrite)

	fmt.Printf("\nFinished seeding %d catalogs, took %s\n", written, time.Since(start))
}
