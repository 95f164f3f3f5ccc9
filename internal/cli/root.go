// Package cli implements the fengate command tree.
package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/fengate/internal/config"
	"github.com/lgbarn/fengate/internal/game"
)

// Root returns the fengate command. cfg supplies defaults that flags
// override; a nil cfg uses config.NewConfig.
func Root(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	root := &cobra.Command{
		Use:   "fengate",
		Short: "Decode board notation and check who may move what",
		Long: heredoc.Doc(`fengate decodes the piece-placement field of board notation
			onto an 8x8 board, encodes boards as 64-character snapshots
			and restores them, and answers whether a player may pick up
			the piece on a square.

			Snapshots hold one digit per square in row-major order from
			a1: 0 for empty, 1 for the first player, 2 for the second.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetLevel(cfg.LogLevel)
			if cmd.Flag("log-level").Changed {
				name, _ := cmd.Flags().GetString("log-level")
				level, err := logrus.ParseLevel(name)
				if err != nil {
					return err
				}
				logrus.SetLevel(level)
			}
			// --trace wins over --log-level.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
			cfg.Output.Writer = cmd.OutOrStdout()
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("log-level", cfg.LogLevel.String(), "Log level (panic, fatal, error, warn, info, debug, trace)")

	root.AddCommand(Decode(cfg))
	root.AddCommand(Restore(cfg))
	root.AddCommand(Gate(cfg))
	root.AddCommand(Validate(cfg))
	root.AddCommand(Batch(cfg))
	root.AddCommand(Play(cfg))

	return root
}

// newGame returns a game that logs through the standard logger.
func newGame(cfg *config.Config) *game.Game {
	return game.New(cfg, game.WithLogger(logrus.StandardLogger()))
}

// oneNotation joins args back into a single notation string, so a record
// may be passed quoted or as separate words.
func oneNotation(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}
	return strings.Join(args, " ")
}

func printf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}
