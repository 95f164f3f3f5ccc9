// Command fengate decodes board notation, encodes and restores snapshots,
// and checks piece ownership against the player to move.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/fengate/internal/cli"
	"github.com/lgbarn/fengate/internal/config"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := fengate(); err != nil {
		logrus.Fatal(err)
	}
}

func fengate() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logrus.SetOutput(cfg.LogFile)
	logrus.SetLevel(cfg.LogLevel)

	root := cli.Root(cfg)
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
