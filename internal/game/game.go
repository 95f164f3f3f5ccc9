// Package game hosts a board, its players and the notation codec, and
// routes every pickup through the legality gate.
package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/fengate/internal/chess"
	"github.com/lgbarn/fengate/internal/config"
	"github.com/lgbarn/fengate/internal/errors"
	"github.com/lgbarn/fengate/internal/notation"
	"github.com/lgbarn/fengate/internal/rules"
)

// Game is a two-player board session.
type Game struct {
	ID uuid.UUID

	cfg     *config.Config
	board   *chess.Board
	players *Registry
	pieces  *PieceSet
	codec   *notation.Codec
	logger  logrus.FieldLogger
	log     *logrus.Entry
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger; the game ID is attached as a field.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) {
		if log != nil {
			g.logger = log
		}
	}
}

// WithID sets the game ID instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.ID = id
	}
}

// New creates a game with an empty board. Call SetUpBoard to place pieces.
func New(cfg *config.Config, opts ...Option) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{
		ID:      uuid.New(),
		cfg:     cfg,
		board:   chess.NewBoard(),
		players: NewRegistry(chess.NumOwners),
		pieces:  NewPieceSet(cfg.SpriteDir),
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.logger.WithField("game", g.ID.String())
	g.codec = notation.NewCodec(g.pieces, notation.WithLogger(g.log))
	return g
}

// Board returns the board the game mutates.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Players returns the player registry.
func (g *Game) Players() *Registry {
	return g.players
}

// SetUpBoard places the configured start position and gives the first move
// to player 0.
func (g *Game) SetUpBoard() {
	g.players.Reset()
	g.Load(g.cfg.StartPosition)
	g.log.WithField("pieces", g.board.Count()).Info("board set up")
}

// Load decodes text onto the board, replacing whatever was there.
func (g *Game) Load(text string) notation.Record {
	rec := g.codec.Decode(g.board, text)
	g.log.WithFields(logrus.Fields{
		"placement": rec.Placement,
		"pieces":    g.board.Count(),
	}).Debug("position loaded")
	return rec
}

// StopGame removes every piece from the board.
func (g *Game) StopGame() {
	g.board.ClearAll()
	g.log.Debug("game stopped")
}

// StateString returns the snapshot string of the board.
func (g *Game) StateString() string {
	return g.codec.Encode(g.board)
}

// InitialStateString returns the snapshot string of the board as it stands.
func (g *Game) InitialStateString() string {
	return g.StateString()
}

// SetStateString restores the board from a snapshot string. Every restored
// piece is a Pawn.
func (g *Game) SetStateString(s string) {
	g.codec.Restore(g.board, s)
}

// CanPickUpAt reports whether the active player may pick up the piece at c.
func (g *Game) CanPickUpAt(c chess.Coord) bool {
	return rules.CanPickUp(g.board.PieceAt(c.X, c.Y), g.players.ActivePlayerNumber())
}

// CanMoveFromTo reports whether the piece at from may be dropped on to.
func (g *Game) CanMoveFromTo(from, to chess.Coord) bool {
	src := g.board.Square(from.X, from.Y)
	dst := g.board.Square(to.X, to.Y)
	if src == nil || dst == nil {
		return false
	}
	return rules.CanMoveTo(src.Piece(), src, dst)
}

// ActionForEmptySquare handles a click on an empty square. Chess has no
// such action.
func (g *Game) ActionForEmptySquare(c chess.Coord) bool {
	return false
}

// OwnerAt returns the player owning the piece at c, or nil when the square
// is empty or off the board.
func (g *Game) OwnerAt(c chess.Coord) *Player {
	p := g.board.PieceAt(c.X, c.Y)
	if p == nil {
		return nil
	}
	return g.players.PlayerAt(p.Owner.Number())
}

// CheckForWinner always returns nil; win detection is not implemented.
func (g *Game) CheckForWinner() *Player {
	return nil
}

// CheckForDraw always returns false; draw detection is not implemented.
func (g *Game) CheckForDraw() bool {
	return false
}

// TryMove moves the piece at from to to on behalf of the active player and
// passes the turn. Any piece on to is replaced.
func (g *Game) TryMove(from, to chess.Coord) error {
	active := g.players.ActivePlayerNumber()
	moveErr := func(err error) error {
		return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Player: active}
	}

	src := g.board.Square(from.X, from.Y)
	dst := g.board.Square(to.X, to.Y)
	if src == nil || dst == nil {
		return moveErr(errors.ErrOutOfBounds)
	}

	piece := src.Piece()
	if piece == nil {
		return moveErr(errors.ErrEmptySquare)
	}
	if !rules.CanPickUp(piece, active) {
		return moveErr(errors.ErrNotYourPiece)
	}
	if from == to || !rules.CanMoveTo(piece, src, dst) {
		return moveErr(errors.ErrIllegalMove)
	}

	dst.SetPiece(piece)
	src.Clear()
	g.players.Advance()

	g.log.WithFields(logrus.Fields{
		"player": active,
		"piece":  piece.Kind.String(),
		"from":   from.String(),
		"to":     to.String(),
	}).Info("move played")
	return nil
}

// ParseSquare converts an algebraic square name to a coordinate.
func ParseSquare(s string) (chess.Coord, error) {
	c, ok := chess.ParseCoord(s)
	if !ok {
		return chess.Coord{}, errors.Wrapf(errors.ErrOutOfBounds, "square %q", s)
	}
	return c, nil
}
