package game

import "math/rand/v2"

const (
	// DefaultSize is the edge length of the grid.
	DefaultSize = 9
	// DefaultMines is the number of bombs seeded into a fresh board.
	DefaultMines = 10
)

// Rand supplies the randomness for mine placement. Tests inject a
// deterministic sequence to pin down exact layouts.
type Rand interface {
	IntN(n int) int
}

type processRand struct{}

func (processRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns a source backed by the process-wide generator.
func DefaultRand() Rand { return processRand{} }

// Board owns the square grid of tiles. The mine layout is fixed at
// construction and never changes afterwards.
type Board struct {
	size      int
	mineCount int
	cells     [][]*Tile
}

// New allocates the default 9x9 board and seeds 10 mines from src.
func New(src Rand) *Board {
	return newBoard(DefaultSize, DefaultMines, src)
}

func newBoard(size, mines int, src Rand) *Board {
	b := emptyBoard(size, mines)
	b.seedBombs(src)
	return b
}

// emptyBoard allocates the grid without seeding any mines. Restore fills
// the tile state itself.
func emptyBoard(size, mines int) *Board {
	cells := make([][]*Tile, size)
	for y := range cells {
		cells[y] = make([]*Tile, size)
	}
	b := &Board{size: size, mineCount: mines, cells: cells}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			b.cells[y][x] = &Tile{X: x, Y: y, board: b}
		}
	}
	return b
}

// seedBombs picks mineCount distinct coordinates by rejection sampling:
// a draw that lands on a tile already carrying a bomb is simply redrawn.
func (b *Board) seedBombs(src Rand) {
	placed := 0
	for placed < b.mineCount {
		x := src.IntN(b.size)
		y := src.IntN(b.size)
		if b.cells[y][x].IsBomb {
			continue
		}
		b.cells[y][x].IsBomb = true
		placed++
	}
}

// Size returns the edge length of the grid.
func (b *Board) Size() int { return b.size }

// MineCount returns the number of bombs on the board.
func (b *Board) MineCount() int { return b.mineCount }

// InBounds reports whether (x, y) lies on the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// At returns the tile at column x, row y. Callers check InBounds first.
func (b *Board) At(x, y int) *Tile {
	return b.cells[y][x]
}

// Won reports whether every non-bomb tile has been revealed. Flags never
// count towards the win: a flagged but unrevealed safe tile still blocks
// it.
func (b *Board) Won() bool {
	for _, row := range b.cells {
		for _, t := range row {
			if !t.IsBomb && !t.IsRevealed {
				return false
			}
		}
	}
	return true
}

// FlagCount returns the number of flagged tiles, for the renderer's
// mines-remaining counter.
func (b *Board) FlagCount() int {
	count := 0
	for _, row := range b.cells {
		for _, t := range row {
			if t.IsFlagged {
				count++
			}
		}
	}
	return count
}
