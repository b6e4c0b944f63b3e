package game

import (
	"fmt"
	"time"
)

// TileSnapshot is the serializable form of one tile.
type TileSnapshot struct {
	X          int  `json:"x"`
	Y          int  `json:"y"`
	IsBomb     bool `json:"is_bomb"`
	IsFlagged  bool `json:"is_flagged"`
	IsRevealed bool `json:"is_revealed"`
}

// Snapshot is the full serializable form of a game: mine layout, every
// tile flag and the elapsed-time baseline. Round-trips through Restore.
type Snapshot struct {
	ID        string         `json:"id"`
	Size      int            `json:"size"`
	MineCount int            `json:"mine_count"`
	Status    Status         `json:"status"`
	Elapsed   time.Duration  `json:"elapsed"`
	Tiles     []TileSnapshot `json:"tiles"`
}

// Snapshot captures the current game for persistence.
func (s *State) Snapshot() *Snapshot {
	size := s.Board.Size()
	snap := &Snapshot{
		ID:        s.ID,
		Size:      size,
		MineCount: s.Board.MineCount(),
		Status:    s.Status,
		Elapsed:   s.Elapsed(),
		Tiles:     make([]TileSnapshot, 0, size*size),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := s.Board.At(x, y)
			snap.Tiles = append(snap.Tiles, TileSnapshot{
				X:          t.X,
				Y:          t.Y,
				IsBomb:     t.IsBomb,
				IsFlagged:  t.IsFlagged,
				IsRevealed: t.IsRevealed,
			})
		}
	}
	return snap
}

// Restore rebuilds a game from a snapshot. The restored clock starts
// now, with the saved elapsed time as its baseline.
func Restore(snap *Snapshot) (*State, error) {
	if snap.Size <= 0 || len(snap.Tiles) != snap.Size*snap.Size {
		return nil, fmt.Errorf("snapshot has %d tiles for a %dx%d board", len(snap.Tiles), snap.Size, snap.Size)
	}
	b := emptyBoard(snap.Size, snap.MineCount)
	for _, ts := range snap.Tiles {
		if !b.InBounds(ts.X, ts.Y) {
			return nil, fmt.Errorf("snapshot tile (%d,%d) outside %dx%d board", ts.X, ts.Y, snap.Size, snap.Size)
		}
		t := b.At(ts.X, ts.Y)
		t.IsBomb = ts.IsBomb
		t.IsFlagged = ts.IsFlagged
		t.IsRevealed = ts.IsRevealed
	}
	return &State{
		ID:          snap.ID,
		Board:       b,
		Status:      snap.Status,
		StartedAt:   time.Now(),
		ElapsedBase: snap.Elapsed,
	}, nil
}
