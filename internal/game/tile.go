package game

// Tile is a single cell of the grid. It carries a back-reference to its
// board, used only to look up the grid dimension and neighboring tiles —
// the board stays the sole owner of every tile.
type Tile struct {
	X, Y       int
	IsBomb     bool
	IsFlagged  bool
	IsRevealed bool

	board *Board
}

// Neighbors returns the adjacent tiles in all eight compass directions,
// skipping coordinates that fall outside the grid. Corner tiles have 3
// neighbors, edge tiles 5, interior tiles 8.
func (t *Tile) Neighbors() []*Tile {
	neighbors := make([]*Tile, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := t.X+dx, t.Y+dy
			if t.board.InBounds(nx, ny) {
				neighbors = append(neighbors, t.board.At(nx, ny))
			}
		}
	}
	return neighbors
}

// NeighborBombCount counts the bombs among the adjacent tiles.
func (t *Tile) NeighborBombCount() int {
	count := 0
	for _, n := range t.Neighbors() {
		if n.IsBomb {
			count++
		}
	}
	return count
}

// ToggleFlag inverts the flag. The revealed-tile guard lives in State,
// not here.
func (t *Tile) ToggleFlag() {
	t.IsFlagged = !t.IsFlagged
}

// Reveal uncovers the tile. Already-revealed and flagged tiles are left
// alone. Uncovering a tile with no adjacent bombs cascades into every
// neighbor; the revealed check terminates the recursion, so each tile is
// visited at most once. The cascade never reaches a bomb: any tile next
// to one has a nonzero count and stops the flood there.
func (t *Tile) Reveal() {
	if t.IsRevealed || t.IsFlagged {
		return
	}
	t.IsRevealed = true
	if t.NeighborBombCount() == 0 {
		for _, n := range t.Neighbors() {
			n.Reveal()
		}
	}
}
