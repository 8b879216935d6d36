package main

import (
	"context"
	"fmt"

	"impacttracker/internal/db"
	"impacttracker/internal/seed"
	"impacttracker/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the charity tables",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := requirePostgres(cfg); err != nil {
			return err
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		return db.Migrate(ctx, pool, logrus.StandardLogger())
	},
}

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with London charities and their stories",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := requirePostgres(cfg); err != nil {
			return err
		}

		ctx := context.Background()

		// Connect to database
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		if err := db.Migrate(ctx, pool, logrus.StandardLogger()); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}

		logrus.Info("Seeding charities...")
		if err := seed.SeedCharities(ctx, store.NewCharityRepository(pool), store.NewStoryRepository(pool)); err != nil {
			return fmt.Errorf("failed to seed charities: %w", err)
		}

		logrus.Info("Charities seeded successfully")

		return nil
	},
}
