package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"ocrbatch/internal/accelerator"
	"ocrbatch/internal/config"
	"ocrbatch/internal/engine/fitz"
	"ocrbatch/internal/service"
	s3storage "ocrbatch/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize storage
	storage, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize the conversion engine once for the whole run; model load
	// is the expensive part.
	log.Printf("ocrbatch: loading conversion engine...")
	engine, err := fitz.NewEngine(cfg.Engine)
	if err != nil {
		return fmt.Errorf("failed to initialize conversion engine: %w", err)
	}
	defer engine.Close()

	acc, err := accelerator.New(&cfg.Accelerator)
	if err != nil {
		return fmt.Errorf("failed to initialize accelerator: %w", err)
	}
	if acc.Available() {
		log.Printf("ocrbatch: accelerator %q available (budget %d MB)", acc.Name(), cfg.Accelerator.MemoryBudgetMB)
	} else {
		log.Printf("ocrbatch: WARNING: no accelerator configured, running without a memory guard")
	}

	// Initialize services
	fetchSvc := service.NewFetchService(storage, &cfg.S3, &cfg.Paths)
	convertSvc := service.NewConvertService(engine, cfg.Paths.OutputRoot)
	guardSvc := service.NewGuardService(acc, cfg.Accelerator.UsageThreshold)
	batchSvc := service.NewBatchService(fetchSvc, convertSvc, guardSvc)

	summary, err := batchSvc.Run(context.Background())
	if err != nil {
		// Discovery failure ends the run with zero documents; it is
		// reported, not fatal.
		log.Printf("ocrbatch: discovery failed, nothing processed: %v", err)
		return nil
	}

	log.Printf("ocrbatch: all documents processed (discovered=%d processed=%d failed=%d)",
		summary.Discovered, summary.Processed, summary.Failed)
	return nil
}
