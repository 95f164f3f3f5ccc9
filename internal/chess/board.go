package chess

// Piece is a piece installed on the board.
type Piece struct {
	Owner Owner
	Kind  PieceKind
	Code  Code

	// Sprite names the image a renderer would draw for this piece.
	Sprite string
}

// NewPiece creates a piece with its identity code filled in.
func NewPiece(owner Owner, kind PieceKind) *Piece {
	return &Piece{
		Owner: owner,
		Kind:  kind,
		Code:  MakeCode(owner, kind),
	}
}

// Square is an addressable slot on the board holding at most one piece.
type Square struct {
	piece *Piece
}

// Piece returns the piece on the square, or nil.
func (s *Square) Piece() *Piece {
	return s.piece
}

// SetPiece installs a piece, replacing any existing one. A nil piece clears the square.
func (s *Square) SetPiece(p *Piece) {
	s.piece = p
}

// Clear removes any piece from the square.
func (s *Square) Clear() {
	s.piece = nil
}

// Empty reports whether the square holds no piece.
func (s *Square) Empty() bool {
	return s.piece == nil
}

// Board is an 8x8 grid of squares addressed by (x, y), x the file and y the
// rank, both 0-7. Row 0 is White's back rank.
type Board struct {
	squares [NumSquares]Square
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// ClearAll removes every piece from the board.
func (b *Board) ClearAll() {
	for i := range b.squares {
		b.squares[i].Clear()
	}
}

// Square returns the square at (x, y), or nil when out of range.
func (b *Board) Square(x, y int) *Square {
	if !InBounds(x, y) {
		return nil
	}
	return &b.squares[SquareIndex(x, y)]
}

// PieceAt returns the piece at (x, y), or nil when empty or out of range.
func (b *Board) PieceAt(x, y int) *Piece {
	sq := b.Square(x, y)
	if sq == nil {
		return nil
	}
	return sq.Piece()
}

// ForEachSquare calls fn for every square in row-major order:
// y from 0 to 7, and x from 0 to 7 within each row.
func (b *Board) ForEachSquare(fn func(sq *Square, x, y int)) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			fn(&b.squares[SquareIndex(x, y)], x, y)
		}
	}
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for i := range b.squares {
		if !b.squares[i].Empty() {
			n++
		}
	}
	return n
}

// CountOwned returns the number of pieces belonging to owner.
func (b *Board) CountOwned(owner Owner) int {
	n := 0
	for i := range b.squares {
		if p := b.squares[i].Piece(); p != nil && p.Owner == owner {
			n++
		}
	}
	return n
}

// Coord is a board coordinate.
type Coord struct {
	X int
	Y int
}

// String returns the algebraic name of the coordinate, e.g. "e4".
func (c Coord) String() string {
	if !InBounds(c.X, c.Y) {
		return "-"
	}
	return string([]byte{byte(FileBase + c.X), byte(RankBase + c.Y)})
}

// ParseCoord converts an algebraic square name such as "e4" to a coordinate.
func ParseCoord(s string) (Coord, bool) {
	if len(s) != 2 {
		return Coord{}, false
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	c := Coord{X: int(file) - FileBase, Y: int(rank) - RankBase}
	if !InBounds(c.X, c.Y) {
		return Coord{}, false
	}
	return c, true
}
