package cli

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/fengate/internal/config"
	"github.com/lgbarn/fengate/internal/game"
	"github.com/lgbarn/fengate/internal/notation"
	"github.com/lgbarn/fengate/internal/output"
	"github.com/lgbarn/fengate/internal/rules"
)

// fengate decode
func Decode(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [notation]",
		Short: "Decode notation onto a board and print it",
		Long: heredoc.Doc(`decode places the pieces named by the first field of the
			notation and prints the board followed by its snapshot.
			Without an argument the configured start position is used.

			Malformed input never fails: unknown characters are skipped
			and a placement without exactly 8 ranks leaves the board
			empty. Use validate to see what was skipped.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				cfg.Output.Format = config.JSON
			}
			if noCoords, _ := cmd.Flags().GetBool("no-coords"); noCoords {
				cfg.Output.ShowCoordinates = false
			}

			g := newGame(cfg)
			rec := g.Load(oneNotation(args, cfg.StartPosition))
			return output.NewWriter(cfg.Output).WriteBoard(g.Board(), rec)
		},
	}

	cmd.Flags().Bool("json", false, "Write the board as JSON")
	cmd.Flags().Bool("no-coords", false, "Omit file letters and rank numbers")
	return cmd
}

// fengate restore
func Restore(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "restore snapshot",
		Short: "Restore a board from a snapshot and print it",
		Long: heredoc.Doc(`restore rebuilds a board from a 64-character snapshot.
			Only ownership is recorded, so every piece comes back as a
			pawn of its owner.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := notation.ValidateSnapshot(args[0]); err != nil {
				logrus.Warn(err)
			}

			g := newGame(cfg)
			g.SetStateString(args[0])
			return output.NewWriter(cfg.Output).WriteBoard(g.Board(), notation.Record{})
		},
	}
}

// fengate gate
func Gate(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "gate notation square player",
		Short: "Report whether a player may pick up the piece on a square",
		Long: heredoc.Doc(`gate decodes the notation, then prints true when the piece
			on the square belongs to the given player (0 or 1) and
			false otherwise. An empty square is always false.`),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := game.ParseSquare(args[1])
			if err != nil {
				return err
			}
			player, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("player %q is not a number: %w", args[2], err)
			}

			g := newGame(cfg)
			g.Load(args[0])
			piece := g.Board().PieceAt(c.X, c.Y)
			allowed := rules.CanPickUp(piece, player)

			logrus.WithFields(logrus.Fields{
				"square":  c.String(),
				"player":  player,
				"allowed": allowed,
			}).Debug("gate checked")

			printf(cmd, "%t\n", allowed)
			return nil
		},
	}
}
