package game

import "testing"

func TestNeighborsCount(t *testing.T) {
	b := boardWithBombs(DefaultSize, nil)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 8, 0, 3},
		{"bottom-left corner", 0, 8, 3},
		{"bottom-right corner", 8, 8, 3},
		{"top edge", 4, 0, 5},
		{"left edge", 0, 4, 5},
		{"right edge", 8, 4, 5},
		{"bottom edge", 4, 8, 5},
		{"interior", 4, 4, 8},
		{"interior next to corner", 1, 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(b.At(tt.x, tt.y).Neighbors()); got != tt.want {
				t.Errorf("Neighbors() of (%d,%d) has %d tiles, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNeighborBombCount(t *testing.T) {
	b := boardWithBombs(DefaultSize, [][2]int{{0, 0}, {1, 0}, {2, 2}})

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"between two bombs", 1, 1, 3},
		{"next to one bomb", 2, 0, 1},
		{"diagonal to one bomb", 3, 3, 1},
		{"far from every bomb", 8, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.At(tt.x, tt.y).NeighborBombCount(); got != tt.want {
				t.Errorf("NeighborBombCount() of (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestToggleFlagTwiceRestoresState(t *testing.T) {
	b := boardWithBombs(DefaultSize, nil)
	tile := b.At(3, 3)

	tile.ToggleFlag()
	if !tile.IsFlagged {
		t.Fatal("first toggle did not set the flag")
	}
	tile.ToggleFlag()
	if tile.IsFlagged {
		t.Error("second toggle did not clear the flag")
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	b := boardWithBombs(DefaultSize, [][2]int{{0, 0}})
	tile := b.At(1, 1)

	tile.Reveal()
	if !tile.IsRevealed {
		t.Fatal("tile not revealed after Reveal()")
	}
	tile.Reveal() // must be a no-op
	if !tile.IsRevealed {
		t.Error("second Reveal() changed the tile state")
	}
}

func TestRevealSkipsFlaggedTile(t *testing.T) {
	b := boardWithBombs(DefaultSize, [][2]int{{0, 0}})
	tile := b.At(4, 4)

	tile.ToggleFlag()
	tile.Reveal()
	if tile.IsRevealed {
		t.Error("Reveal() uncovered a flagged tile")
	}
	if !tile.IsFlagged {
		t.Error("Reveal() cleared the flag")
	}
}

func TestRevealCascadeStopsAtNonzeroBorder(t *testing.T) {
	// A vertical wall of bombs at x=2 splits a 5x5 board in two. The
	// cascade from (0,0) must flood the left half, reveal the nonzero
	// border at x=1 and never cross the wall.
	bombs := [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
	b := boardWithBombs(5, bombs)

	b.At(0, 0).Reveal()

	for y := 0; y < 5; y++ {
		if !b.At(0, y).IsRevealed {
			t.Errorf("zero-count tile (0,%d) not revealed by cascade", y)
		}
		if !b.At(1, y).IsRevealed {
			t.Errorf("border tile (1,%d) not revealed by cascade", y)
		}
		if b.At(2, y).IsRevealed {
			t.Errorf("bomb (2,%d) revealed by cascade", y)
		}
		for x := 3; x < 5; x++ {
			if b.At(x, y).IsRevealed {
				t.Errorf("tile (%d,%d) beyond the wall revealed by cascade", x, y)
			}
		}
	}
}

func TestRevealCascadeFloodsConnectedRegion(t *testing.T) {
	// Single bomb in a corner: revealing the opposite corner cascades
	// through the connected zero-region and uncovers all 80 safe tiles.
	b := boardWithBombs(DefaultSize, [][2]int{{0, 0}})

	b.At(8, 8).Reveal()

	revealed := 0
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if b.At(x, y).IsRevealed {
				revealed++
			}
		}
	}
	if revealed != 80 {
		t.Errorf("cascade revealed %d tiles, want 80", revealed)
	}
	if b.At(0, 0).IsRevealed {
		t.Error("cascade revealed the bomb")
	}
	if !b.Won() {
		t.Error("Won() = false after revealing every safe tile")
	}
}
