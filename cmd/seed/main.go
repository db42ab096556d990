package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-LaundryService/internal/config"
	productRepo "github.com/m04kA/SMC-LaundryService/internal/infra/storage/product"
	"github.com/m04kA/SMC-LaundryService/internal/service/catalogseed"
	"github.com/m04kA/SMC-LaundryService/pkg/logger"
)

func main() {
	file := flag.String("file", "seed/products.yaml", "YAML file with catalog products")
	force := flag.Bool("force", false, "replace existing products")
	flag.Parse()

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	products, err := catalogseed.LoadFile(*file)
	if err != nil {
		log.Fatal("Failed to load seed file: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	seeder := catalogseed.NewSeeder(productRepo.NewRepository(db), log)
	n, err := seeder.Run(ctx, products, *force)
	switch {
	case errors.Is(err, catalogseed.ErrCatalogNotEmpty):
		log.Warn("Catalog is not empty, nothing to do (run with -force to replace)")
		return
	case err != nil:
		log.Fatal("Seed failed after %d products: %v", n, err)
	}

	log.Info("Seeded %d products from %s", n, *file)
}
