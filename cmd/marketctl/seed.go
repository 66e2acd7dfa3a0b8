package main

import (
	"context"
	"fmt"
	"trainer-market-service/internal/adapters/repositories"
	"trainer-market-service/internal/config"
	"trainer-market-service/internal/domain"
	"trainer-market-service/internal/platform/db"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the cities table and load the market table into the configured SQL store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		recs, err := seedRecords()
		if err != nil {
			return err
		}

		if err := seedStore(ctx, cfg.Store, recs); err != nil {
			return err
		}

		zap.L().Info("seeding complete", zap.String("driver", cfg.Store.Driver), zap.Int("cities", len(recs)))
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d cities into %s store.\n", len(recs), cfg.Store.Driver)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "cities YAML file (default: built-in table)")
	rootCmd.AddCommand(seedCmd)
}

func seedRecords() ([]domain.CityRecord, error) {
	if seedFile == "" {
		return repositories.EmbeddedCities()
	}
	return repositories.LoadCitiesYAML(seedFile)
}

func seedStore(ctx context.Context, store config.StoreConfig, recs []domain.CityRecord) error {
	switch store.Driver {
	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, store.SQLitePath)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		zap.L().Info("initializing database schema", zap.String("path", store.SQLitePath))
		if err := repositories.InitSchema(ctx, sqlDB); err != nil {
			return err
		}
		return repositories.SeedCities(ctx, sqlDB, recs)

	case config.DriverPostgres:
		pool, err := db.Open(ctx, store.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo := repositories.NewPostgresCityRepository(pool)
		zap.L().Info("initializing database schema")
		if err := repo.InitSchema(ctx); err != nil {
			return err
		}
		return repo.SeedCities(ctx, recs)

	default:
		return eris.Errorf("seed: store.driver %q has nothing to seed; use sqlite or postgres", store.Driver)
	}
}
