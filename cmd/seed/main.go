package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cinepulse/internal/api/config"
	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/internal/api/service"
	"cinepulse/internal/entity"
	"cinepulse/pkg/common"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/postgres"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dataFile   string
	truncate   bool
	batchSize  int
)

func openRepository(cfg *config.Config) (repository.MovieReviewRepository, func(), error) {
	db, err := postgres.NewDB(postgres.Config{
		URL:             cfg.Database.URL,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return repository.NewMovieReviewRepository(db.DB), closeFn, nil
}

// readDataset decodes a JSON array of reviews, keeping each element's raw bytes.
func readDataset(path string) ([]entity.MovieReview, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(content, &elements); err != nil {
		return nil, fmt.Errorf("decode %s: expected a JSON array: %w", path, err)
	}

	reviews := make([]entity.MovieReview, 0, len(elements))
	for i, raw := range elements {
		var payload dto.ReviewPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode review #%d: %w", i, err)
		}
		if strings.TrimSpace(payload.Movie) == "" {
			continue
		}
		reviews = append(reviews, service.ReviewFromPayload(payload, raw))
	}
	return reviews, nil
}

func validateBatchSize(size int) error {
	if size < 1 {
		return fmt.Errorf("--batch-size must be at least 1, got %d", size)
	}
	return nil
}

func runLoad(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	reviews, err := readDataset(dataFile)
	if err != nil {
		appLogger.Fatal("Failed to read dataset", logger.ErrorField(err))
	}
	appLogger.Info("Dataset decoded", logger.StringField("file", dataFile), logger.IntField("reviews", len(reviews)))

	repo, closeFn, err := openRepository(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	defer closeFn()

	if truncate {
		if err := repo.Truncate(ctx); err != nil {
			appLogger.Fatal("Failed to truncate movie_reviews", logger.ErrorField(err))
		}
		appLogger.Info("Existing reviews removed")
	}

	inserted, err := repo.CreateBatch(ctx, reviews, batchSize)
	if err != nil {
		appLogger.Fatal("Failed to insert reviews", logger.ErrorField(err))
	}
	appLogger.Info("Seed finished", logger.Field("inserted", inserted), logger.IntField("skipped", len(reviews)-int(inserted)))
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	repo, closeFn, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer closeFn()

	stats, err := repo.Stats(cmd.Context())
	if err != nil {
		log.Fatalf("Failed to compute stats: %v", err)
	}
	out, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(out))
}

func main() {
	rootCmd := &cobra.Command{Use: "seed"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Import a JSON review dataset into movie_reviews",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateBatchSize(batchSize)
		},
		Run: runLoad,
	}
	loadCmd.Flags().StringVarP(&dataFile, "file", "f", "data/reviews.json", "JSON array of reviews")
	loadCmd.Flags().BoolVar(&truncate, "truncate", false, "Delete existing reviews before loading")
	loadCmd.Flags().IntVar(&batchSize, "batch-size", common.SeedBatchSize, "Rows per insert batch")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print dataset statistics",
		Run:   runStats,
	}

	rootCmd.AddCommand(loadCmd, statsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing seed CLI: %s\n", err)
		os.Exit(1)
	}
}
