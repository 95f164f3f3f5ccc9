package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/fengate/internal/chess"
	"github.com/lgbarn/fengate/internal/config"
	"github.com/lgbarn/fengate/internal/errors"
	"github.com/lgbarn/fengate/internal/game"
	"github.com/lgbarn/fengate/internal/output"
)

const playHelp = `commands:
  e2 e4, e2e4, e2-e4   move a piece
  board                print the board
  state                print the snapshot
  load <notation>      replace the position
  restore <snapshot>   restore a snapshot
  reset                set up the start position again
  help                 show this list
  quit                 leave`

// fengate play
func Play(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Move pieces interactively, with ownership checked on every pickup",
		Long: heredoc.Doc(`play sets up the configured start position for two players
			and prompts for moves. A move is accepted when the piece on
			the source square belongs to the player to move; there are no
			movement rules beyond that. The turn passes after every
			accepted move.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := newGame(cfg)
			g.SetUpBoard()
			w := cmd.OutOrStdout()
			fmt.Fprint(w, output.Diagram(g.Board(), true))

			for {
				prompt := promptui.Prompt{
					Label: g.Players().Current().String(),
				}
				line, err := prompt.Run()
				if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
					return nil
				}
				if err != nil {
					return err
				}

				quit, err := runPlayCommand(g, w, line)
				if err != nil {
					logrus.Warn(err)
					continue
				}
				if quit {
					return nil
				}
			}
		},
	}
}

// runPlayCommand applies one line of play input to g and reports whether
// the session should end.
func runPlayCommand(g *game.Game, w io.Writer, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(w, playHelp)
	case "board":
		fmt.Fprint(w, output.Diagram(g.Board(), true))
	case "state":
		fmt.Fprintln(w, g.StateString())
	case "reset":
		g.SetUpBoard()
		fmt.Fprint(w, output.Diagram(g.Board(), true))
	case "load":
		if len(fields) < 2 {
			return false, errors.Wrap(errors.ErrInvalidFEN, "load needs a notation")
		}
		g.Load(strings.Join(fields[1:], " "))
		fmt.Fprint(w, output.Diagram(g.Board(), true))
	case "restore":
		if len(fields) != 2 {
			return false, errors.Wrap(errors.ErrInvalidSnapshot, "restore needs one snapshot")
		}
		g.SetStateString(fields[1])
		fmt.Fprint(w, output.Diagram(g.Board(), true))
	default:
		from, to, err := parseMove(fields)
		if err != nil {
			return false, err
		}
		if err := g.TryMove(from, to); err != nil {
			return false, err
		}
		fmt.Fprint(w, output.Diagram(g.Board(), true))
	}
	return false, nil
}

// parseMove accepts "e2 e4", "e2e4" and "e2-e4".
func parseMove(fields []string) (from, to chess.Coord, err error) {
	var a, b string
	switch {
	case len(fields) == 2:
		a, b = fields[0], fields[1]
	case len(fields) == 1 && len(fields[0]) == 5 && fields[0][2] == '-':
		a, b = fields[0][:2], fields[0][3:]
	case len(fields) == 1 && len(fields[0]) == 4:
		a, b = fields[0][:2], fields[0][2:]
	default:
		return from, to, errors.Wrapf(errors.ErrIllegalMove, "cannot read move %q", strings.Join(fields, " "))
	}

	if from, err = game.ParseSquare(a); err != nil {
		return from, to, err
	}
	to, err = game.ParseSquare(b)
	return from, to, err
}
