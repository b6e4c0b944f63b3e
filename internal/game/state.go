package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle of a game. Ongoing transitions at most once,
// to Exploded, Won or Quit; all three are terminal.
type Status int

const (
	StatusOngoing Status = iota
	StatusExploded
	StatusWon
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusExploded:
		return "exploded"
	case StatusWon:
		return "won"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ErrOutOfBounds is returned for a move whose coordinates fall outside
// the grid. Input is range-checked before it reaches this layer, so
// seeing it means the validation layer was bypassed.
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// State ties a board to the status machine and the resumable clock. It
// owns the board for the whole game.
type State struct {
	ID     string
	Board  *Board
	Status Status

	// StartedAt marks the current play session; ElapsedBase accumulates
	// time from sessions before a resume.
	StartedAt   time.Time
	ElapsedBase time.Duration
}

// NewState starts a fresh game on a default board seeded from src.
func NewState(src Rand) *State {
	return &State{
		ID:        uuid.NewString(),
		Board:     New(src),
		Status:    StatusOngoing,
		StartedAt: time.Now(),
	}
}

// Terminal reports whether the game has finished. No move is accepted
// afterwards.
func (s *State) Terminal() bool {
	return s.Status != StatusOngoing
}

// Elapsed returns the total play time across sessions.
func (s *State) Elapsed() time.Duration {
	return s.ElapsedBase + time.Since(s.StartedAt)
}

// RevealAt resolves a reveal move at 0-based grid coordinates. Hitting a
// bomb is a normal transition to Exploded, not an error; the detonated
// tile is marked revealed so the renderer can show it. Flagged and
// already-revealed targets, and any move after a terminal status, are
// silent no-ops.
func (s *State) RevealAt(x, y int) error {
	if s.Terminal() {
		return nil
	}
	if !s.Board.InBounds(x, y) {
		return ErrOutOfBounds
	}
	tile := s.Board.At(x, y)
	if tile.IsRevealed || tile.IsFlagged {
		return nil
	}
	if tile.IsBomb {
		tile.IsRevealed = true
		s.Status = StatusExploded
		return nil
	}
	tile.Reveal()
	if s.Board.Won() {
		s.Status = StatusWon
	}
	return nil
}

// ToggleFlagAt flags or unflags the tile at 0-based grid coordinates.
// Revealed tiles and terminal games are silent no-ops.
func (s *State) ToggleFlagAt(x, y int) error {
	if s.Terminal() {
		return nil
	}
	if !s.Board.InBounds(x, y) {
		return ErrOutOfBounds
	}
	tile := s.Board.At(x, y)
	if tile.IsRevealed {
		return nil
	}
	tile.ToggleFlag()
	return nil
}

// Quit ends the game immediately, whatever the board looks like.
func (s *State) Quit() {
	if s.Terminal() {
		return
	}
	s.Status = StatusQuit
}
