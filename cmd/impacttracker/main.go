package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "impacttracker",
		Usage: "Donation impact map for London charities",
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			seedCommand,
			rankCommand,
			suggestionsCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
