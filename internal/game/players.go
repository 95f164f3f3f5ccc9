package game

import "github.com/lgbarn/fengate/internal/chess"

// Player is one seat at the board.
type Player struct {
	Number int
	Owner  chess.Owner
}

// String returns a display name for the player.
func (p *Player) String() string {
	if p.Owner == chess.First {
		return "White"
	}
	return "Black"
}

// Registry tracks the players and whose turn it is.
type Registry struct {
	players []*Player
	current int
}

// NewRegistry creates a registry for n players. The piece model only knows
// two owners, so n is clamped to the range 1-2.
func NewRegistry(n int) *Registry {
	if n < 1 {
		n = 1
	}
	if n > chess.NumOwners {
		n = chess.NumOwners
	}
	r := &Registry{players: make([]*Player, n)}
	for i := range r.players {
		r.players[i] = &Player{Number: i, Owner: chess.Owner(i)}
	}
	return r
}

// Count returns the number of players.
func (r *Registry) Count() int {
	return len(r.players)
}

// ActivePlayerNumber returns the number of the player to move.
func (r *Registry) ActivePlayerNumber() int {
	return r.current
}

// Current returns the player to move.
func (r *Registry) Current() *Player {
	return r.players[r.current]
}

// PlayerAt returns the player with the given number, or nil.
func (r *Registry) PlayerAt(n int) *Player {
	if n < 0 || n >= len(r.players) {
		return nil
	}
	return r.players[n]
}

// Advance passes the turn to the next player.
func (r *Registry) Advance() {
	r.current = (r.current + 1) % len(r.players)
}

// Reset gives the turn back to player 0.
func (r *Registry) Reset() {
	r.current = 0
}
