package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"impacttracker/internal/db"
	"impacttracker/internal/donation"
	"impacttracker/internal/geo"
	"impacttracker/internal/server"
	"impacttracker/internal/store"
	"impacttracker/internal/utils"
	"impacttracker/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type rankRow struct {
	Rank       int
	Name       string
	DistanceKM float64
	Supported  bool
}

func rankRows(ranked []geo.Ranked[*types.CharityWithStories]) []rankRow {
	rows := make([]rankRow, len(ranked))
	for i, r := range ranked {
		rows[i] = rankRow{
			Rank:       r.Rank,
			Name:       r.Item.Name,
			DistanceKM: utils.RoundFloat64(r.DistanceKM, 2),
			Supported:  r.Supported,
		}
	}
	return rows
}

// supportedLines lists only the directly supported charities.
func supportedLines(ranked []geo.Ranked[*types.CharityWithStories]) []string {
	supported := geo.Supported(ranked)
	lines := make([]string, len(supported))
	for i, r := range supported {
		lines[i] = fmt.Sprintf("  %d. %s (%.1fkm)", r.Rank, r.Item.Name, r.DistanceKM)
	}
	return lines
}

var rankCommand = &cli.Command{
	Name:  "rank",
	Usage: "Print charities by distance and which ones a donation supports",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "amount",
			Aliases: []string{"a"},
			Usage:   "Donation amount in pounds",
			Value:   100,
		},
	},
	Action: func(c *cli.Context) error {
		amount := c.Int("amount")
		if !donation.ValidAmount(amount) {
			return errors.New(donation.MsgAmountInvalid)
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx, cancel := context.WithTimeout(c.Context, 30*time.Second)
		defer cancel()

		backend, closeBackend, err := openBackend(ctx, cfg, logrus.StandardLogger())
		if err != nil {
			return err
		}
		defer closeBackend()

		charities, err := backend.FetchCharities(ctx)
		if err != nil {
			return err
		}

		k := donation.SupportedCount(amount)
		ranked := server.RankCharities(geo.NewPoint(cfg.ReferenceLatitude, cfg.ReferenceLongitude), charities, k)

		if _, err := pp.Println(rankRows(ranked)); err != nil {
			return err
		}

		fmt.Printf("£%d supports %d %s\n", amount, k, donation.CharityNoun(k))
		for _, line := range supportedLines(ranked) {
			fmt.Println(line)
		}

		return nil
	},
}

var suggestionsCommand = &cli.Command{
	Name:  "suggestions",
	Usage: "Print the most recent charity suggestions",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Number of suggestions to show",
			Value:   20,
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := requirePostgres(cfg); err != nil {
			return err
		}

		pool, err := db.Connect(c.Context, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		suggestions, err := store.NewSuggestionRepository(pool).LatestSuggestions(c.Context, c.Uint64("limit"))
		if err != nil {
			return err
		}

		_, err = pp.Println(suggestions)
		return err
	},
}
