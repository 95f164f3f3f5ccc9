// Package hashing detects repeated board positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/fengate/internal/chess"
)

// zobristSeed is fixed so hashes are stable across runs.
const zobristSeed = 0x5EED_F00D

// zobrist holds one random key per (square, owner, kind).
var zobrist [chess.NumSquares][chess.NumOwners][chess.NumPieceKinds]uint64

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for sq := range zobrist {
		for o := range zobrist[sq] {
			for k := range zobrist[sq][o] {
				zobrist[sq][o][k] = r.Uint64()
			}
		}
	}
}

// GenerateZobristHash returns the Zobrist hash of the pieces on b. Sprites
// do not take part; two boards with the same codes on the same squares hash
// equally.
func GenerateZobristHash(b *chess.Board) uint64 {
	var hash uint64
	b.ForEachSquare(func(sq *chess.Square, x, y int) {
		p := sq.Piece()
		if p == nil {
			return
		}
		owner, kind := p.Code.Split()
		if kind >= chess.NumPieceKinds {
			return
		}
		hash ^= zobrist[chess.SquareIndex(x, y)][owner][kind]
	})
	return hash
}

// WeakHash is a cheap positional checksum used to confirm a Zobrist match.
func WeakHash(b *chess.Board) uint32 {
	var hash uint32
	b.ForEachSquare(func(sq *chess.Square, x, y int) {
		if p := sq.Piece(); p != nil {
			hash += uint32(p.Code) * uint32(chess.SquareIndex(x, y)+1)
		}
	})
	return hash
}

// Signature identifies a board position.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash confirms a Hash match
	WeakHash uint32
}

// Sign computes the signature of b.
func Sign(b *chess.Board) Signature {
	return Signature{Hash: GenerateZobristHash(b), WeakHash: WeakHash(b)}
}

type seenEntry struct {
	weak  uint32
	index int
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use.
type DuplicateDetector struct {
	hashTable      map[uint64][]seenEntry
	duplicateCount int
	unique         int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{hashTable: make(map[uint64][]seenEntry)}
}

// CheckAndAdd records sig under index. If the position was seen before it
// returns the index it was first seen under and true.
func (d *DuplicateDetector) CheckAndAdd(sig Signature, index int) (int, bool) {
	for _, e := range d.hashTable[sig.Hash] {
		if e.weak == sig.WeakHash {
			d.duplicateCount++
			return e.index, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], seenEntry{weak: sig.WeakHash, index: index})
	d.unique++
	return index, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions seen.
func (d *DuplicateDetector) UniqueCount() int {
	return d.unique
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]seenEntry)
	d.duplicateCount = 0
	d.unique = 0
}
