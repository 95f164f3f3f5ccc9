// Package chess provides the piece model and board container shared by the
// notation codec, the legality gate and the game host.
package chess

// Owner identifies which of the two players owns a piece.
// The model is fixed at two players.
type Owner int

const (
	First Owner = iota
	Second
)

// NumOwners is the number of players the piece model supports.
const NumOwners = 2

// String returns the string representation of an owner.
func (o Owner) String() string {
	if o == Second {
		return "Second"
	}
	return "First"
}

// Number returns the player number (0 or 1) for an owner.
func (o Owner) Number() int {
	return int(o)
}

// OwnerFromNumber converts a player number to an owner.
func OwnerFromNumber(n int) (Owner, bool) {
	if n < 0 || n >= NumOwners {
		return First, false
	}
	return Owner(n), true
}

// PieceKind represents a chess piece type. None must stay at ordinal 0
// because the ordinal is packed directly into a Code.
type PieceKind int

const (
	None PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase notation letter of a piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k > None && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a notation letter (either case) to a piece kind.
// Unrecognized letters return None.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return None
	}
}

// Code is the legacy single-integer piece identity: the kind ordinal,
// plus OwnerBit when the piece belongs to Second. Zero means an empty square.
type Code int

// OwnerBit partitions the code range between the two owners.
const OwnerBit = 128

// MakeCode packs an owner and kind into an identity code.
func MakeCode(owner Owner, kind PieceKind) Code {
	if kind <= None || kind >= NumPieceKinds {
		return 0
	}
	return Code(int(owner)*OwnerBit | int(kind))
}

// Split unpacks an identity code into its owner and kind.
func (c Code) Split() (Owner, PieceKind) {
	owner := First
	if c&OwnerBit != 0 {
		owner = Second
	}
	return owner, PieceKind(c &^ OwnerBit)
}

// Partition returns the owner partition bit of the code (0 or OwnerBit).
func (c Code) Partition() int {
	return int(c) & OwnerBit
}

// PlayerPartition scales a player number onto the owner partition.
func PlayerPartition(playerNumber int) int {
	return playerNumber * OwnerBit
}

// Letter returns the notation letter for the code: uppercase for First,
// lowercase for Second, '0' for an empty square.
func (c Code) Letter() byte {
	if c == 0 {
		return '0'
	}
	owner, kind := c.Split()
	letter := kind.Letter()
	if owner == Second && letter != '?' {
		letter += 'a' - 'A'
	}
	return letter
}

// Placement is a piece position produced by decoding notation.
type Placement struct {
	Kind  PieceKind
	Owner Owner
	X     int
	Y     int
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// InBounds reports whether (x, y) addresses a square on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// SquareIndex returns the row-major index of (x, y).
func SquareIndex(x, y int) int {
	return y*BoardSize + x
}
