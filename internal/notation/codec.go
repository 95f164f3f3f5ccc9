package notation

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/fengate/internal/chess"
)

// Grid is the board container the codec reads from and writes to.
// ForEachSquare must visit squares in the same order on every call.
type Grid interface {
	ClearAll()
	Square(x, y int) *chess.Square
	ForEachSquare(fn func(sq *chess.Square, x, y int))
}

// PieceFactory creates the pieces the codec installs on a grid.
type PieceFactory interface {
	NewPiece(owner chess.Owner, kind chess.PieceKind) *chess.Piece
}

// PieceFactoryFunc adapts a function to the PieceFactory interface.
type PieceFactoryFunc func(owner chess.Owner, kind chess.PieceKind) *chess.Piece

// NewPiece calls f(owner, kind).
func (f PieceFactoryFunc) NewPiece(owner chess.Owner, kind chess.PieceKind) *chess.Piece {
	return f(owner, kind)
}

// Codec decodes notation onto a grid and snapshots grids to text.
// It holds no board state of its own.
type Codec struct {
	factory PieceFactory
	log     logrus.FieldLogger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger used to report skipped input.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Codec) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCodec creates a codec that builds pieces with factory.
// A nil factory falls back to chess.NewPiece.
func NewCodec(factory PieceFactory, opts ...Option) *Codec {
	if factory == nil {
		factory = PieceFactoryFunc(chess.NewPiece)
	}
	c := &Codec{
		factory: factory,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode clears grid and places the pieces described by the first field of
// text. Malformed input never fails: a wrong rank count leaves the grid
// empty, and unrecognized characters are skipped without advancing the
// column. The parsed record is returned so callers can read the remaining
// fields.
func (c *Codec) Decode(grid Grid, text string) Record {
	grid.ClearAll()

	rec := ParseRecord(text)
	if rec.Placement == "" {
		c.log.Debug("decode: no placement field")
		return rec
	}

	placements, issues := scanPlacements(rec.Placement)
	for _, issue := range issues {
		c.log.WithField("placement", rec.Placement).Debugf("decode: %v", issue)
	}

	for _, p := range placements {
		if sq := grid.Square(p.X, p.Y); sq != nil {
			sq.SetPiece(c.factory.NewPiece(p.Owner, p.Kind))
		}
	}
	return rec
}

// ParsePlacements returns the placements described by a placement field.
// It returns nil when the field does not hold exactly eight ranks.
func ParsePlacements(field string) []chess.Placement {
	placements, _ := scanPlacements(field)
	return placements
}

// splitRanks splits a placement field on '/'. A single trailing separator
// does not start a new rank.
func splitRanks(field string) []string {
	ranks := strings.Split(field, "/")
	if n := len(ranks); n > 0 && ranks[n-1] == "" {
		ranks = ranks[:n-1]
	}
	return ranks
}

// scanPlacements walks a placement field rank by rank, returning every
// placement it emits along with a description of everything it tolerated.
func scanPlacements(field string) ([]chess.Placement, []error) {
	ranks := splitRanks(field)
	if len(ranks) != chess.BoardSize {
		return nil, []error{rankCountError(len(ranks))}
	}

	var placements []chess.Placement
	var issues []error
	for r, rank := range ranks {
		y := chess.BoardSize - 1 - r
		x := 0
		i := 0
		for ; i < len(rank) && x < chess.BoardSize; i++ {
			ch := rank[i]
			if isDigit(ch) {
				if ch == '0' || ch == '9' {
					issues = append(issues, charError(r, i, ch, "an empty-square count 1-8"))
				}
				x += int(ch - '0')
				continue
			}
			kind := chess.KindFromLetter(ch)
			if kind == chess.None {
				issues = append(issues, charError(r, i, ch, "one of pnbrqk"))
				continue
			}
			owner := chess.Second
			if isUpper(ch) {
				owner = chess.First
			}
			placements = append(placements, chess.Placement{Kind: kind, Owner: owner, X: x, Y: y})
			x++
		}
		switch {
		case x > chess.BoardSize:
			issues = append(issues, rankWidthError(r, x))
		case i < len(rank):
			issues = append(issues, trailingError(r, i, rank[i:]))
		case x < chess.BoardSize:
			issues = append(issues, rankWidthError(r, x))
		}
	}
	return placements, issues
}

// Encode returns the 64-character snapshot of grid: '0' for an empty square,
// otherwise the owner's player number plus one. Piece kinds are not kept.
func Encode(grid Grid) string {
	var sb strings.Builder
	sb.Grow(chess.NumSquares)
	grid.ForEachSquare(func(sq *chess.Square, x, y int) {
		sb.WriteByte(snapshotChar(sq.Piece()))
	})
	return sb.String()
}

// Encode returns the snapshot of grid. See the package-level Encode.
func (c *Codec) Encode(grid Grid) string {
	return Encode(grid)
}

// Restore rebuilds grid from a snapshot produced by Encode. Every occupied
// square comes back as a Pawn of the recorded owner. Squares whose index
// lies beyond the end of snapshot are left untouched. The owner model has
// two players, so digits other than 0-2 (and any non-digit) clear the
// square.
func (c *Codec) Restore(grid Grid, snapshot string) {
	grid.ForEachSquare(func(sq *chess.Square, x, y int) {
		i := chess.SquareIndex(x, y)
		if i >= len(snapshot) {
			return
		}
		d := int(snapshot[i]) - '0'
		if d == 0 {
			sq.Clear()
			return
		}
		owner, ok := chess.OwnerFromNumber(d - 1)
		if !ok {
			c.log.WithField("index", i).Debugf("restore: %q is not an owner digit", snapshot[i])
			sq.Clear()
			return
		}
		sq.SetPiece(c.factory.NewPiece(owner, chess.Pawn))
	})
}

func snapshotChar(p *chess.Piece) byte {
	if p == nil {
		return '0'
	}
	return byte('1' + p.Owner.Number())
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
