// Package hint suggests a next move from the revealed counts alone. It
// never mutates the board.
package hint

import (
	"minesweeper/internal/game"
)

// Kind says whether the suggestion is a reveal or a flag.
type Kind int

const (
	KindReveal Kind = iota
	KindFlag
)

// Suggestion is a single advised move. Certain suggestions follow
// logically from the visible counts; anything else is a guess.
type Suggestion struct {
	X, Y    int
	Kind    Kind
	Certain bool
}

// Next picks a move in three tiers: a certainly-safe reveal, then a
// certain mine to flag, then a random hidden tile as a guess. Returns
// nil only when no hidden unflagged tile is left.
func Next(b *game.Board, src game.Rand) *Suggestion {
	if s := findSafeReveal(b); s != nil {
		return s
	}
	if s := findCertainMine(b); s != nil {
		return s
	}
	return randomGuess(b, src)
}

// findSafeReveal looks for a revealed count whose flagged neighbors
// already account for every adjacent mine: its remaining hidden
// neighbors are certainly safe.
func findSafeReveal(b *game.Board) *Suggestion {
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			tile := b.At(x, y)
			if !tile.IsRevealed {
				continue
			}
			count := tile.NeighborBombCount()
			if count == 0 {
				continue
			}
			flagged, hidden := splitHidden(tile)
			if flagged == count && len(hidden) > 0 {
				return &Suggestion{X: hidden[0].X, Y: hidden[0].Y, Kind: KindReveal, Certain: true}
			}
		}
	}
	return nil
}

// findCertainMine looks for a revealed count whose hidden neighbors
// exactly cover the mines not yet flagged: every one of them is a mine.
func findCertainMine(b *game.Board) *Suggestion {
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			tile := b.At(x, y)
			if !tile.IsRevealed {
				continue
			}
			count := tile.NeighborBombCount()
			if count == 0 {
				continue
			}
			flagged, hidden := splitHidden(tile)
			if len(hidden) > 0 && flagged+len(hidden) == count {
				return &Suggestion{X: hidden[0].X, Y: hidden[0].Y, Kind: KindFlag, Certain: true}
			}
		}
	}
	return nil
}

// randomGuess falls back to an arbitrary hidden unflagged tile.
func randomGuess(b *game.Board, src game.Rand) *Suggestion {
	var candidates []*game.Tile
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			tile := b.At(x, y)
			if !tile.IsRevealed && !tile.IsFlagged {
				candidates = append(candidates, tile)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	pick := candidates[src.IntN(len(candidates))]
	return &Suggestion{X: pick.X, Y: pick.Y, Kind: KindReveal, Certain: false}
}

// splitHidden partitions a tile's unrevealed neighbors into a flagged
// count and the hidden unflagged rest.
func splitHidden(tile *game.Tile) (flagged int, hidden []*game.Tile) {
	for _, n := range tile.Neighbors() {
		if n.IsRevealed {
			continue
		}
		if n.IsFlagged {
			flagged++
		} else {
			hidden = append(hidden, n)
		}
	}
	return flagged, hidden
}
