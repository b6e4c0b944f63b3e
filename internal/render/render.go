// Package render draws the board to a terminal. It only ever reads game
// state; every mutation happens through the core.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"minesweeper/internal/game"
)

const (
	flagMarker   = "F"
	hiddenMarker = "·"
	bombMarker   = "*"
	blankMarker  = " "
)

// Renderer writes the grid, counters and status banner to out.
type Renderer struct {
	out io.Writer
}

// New returns a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Draw prints the full board with 1-based column headers and bottom-up
// row labels, followed by the mines-remaining and elapsed-time line.
func (r *Renderer) Draw(s *game.State) {
	b := s.Board

	fmt.Fprint(r.out, "\n    ")
	for x := 0; x < b.Size(); x++ {
		fmt.Fprintf(r.out, "%d ", x+1)
	}
	fmt.Fprintln(r.out)

	for y := 0; y < b.Size(); y++ {
		fmt.Fprintf(r.out, "%2d  ", b.Size()-y)
		for x := 0; x < b.Size(); x++ {
			marker, c := symbol(b.At(x, y))
			c.Fprint(r.out, marker)
			fmt.Fprint(r.out, " ")
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "\nmines left: %d   time: %s\n",
		b.MineCount()-b.FlagCount(), formatElapsed(s.Elapsed()))
}

// Banner prints the end-of-game message for a terminal status. Ongoing
// games get nothing.
func (r *Renderer) Banner(s *game.State) {
	switch s.Status {
	case game.StatusExploded:
		color.New(color.FgHiRed, color.Bold).Fprintln(r.out, "BOOM! You hit a mine.")
	case game.StatusWon:
		color.New(color.FgHiGreen, color.Bold).Fprintln(r.out, "You win! Every safe tile revealed.")
	case game.StatusQuit:
		fmt.Fprintln(r.out, "Goodbye.")
	}
}

// symbol picks the marker and color for one tile: flagged, hidden,
// detonated bomb, blank zero-count or the neighbor-bomb digit.
func symbol(t *game.Tile) (string, *color.Color) {
	switch {
	case t.IsFlagged:
		return flagMarker, color.New(color.FgHiYellow)
	case !t.IsRevealed:
		return hiddenMarker, color.New(color.Faint)
	case t.IsBomb:
		return bombMarker, color.New(color.FgHiRed, color.Bold)
	}
	count := t.NeighborBombCount()
	if count == 0 {
		return blankMarker, color.New(color.Reset)
	}
	return fmt.Sprintf("%d", count), countColor(count)
}

// countColor maps every reachable neighbor count to a color. The
// dispatch is total over 1..8 with an explicit default for anything
// else, which cannot occur on an 8-neighbor grid.
func countColor(count int) *color.Color {
	switch count {
	case 1:
		return color.New(color.FgBlue)
	case 2:
		return color.New(color.FgGreen)
	case 3:
		return color.New(color.FgRed)
	case 4:
		return color.New(color.FgMagenta)
	case 5:
		return color.New(color.FgYellow)
	case 6:
		return color.New(color.FgCyan)
	case 7:
		return color.New(color.FgHiMagenta)
	case 8:
		return color.New(color.FgHiRed)
	default:
		return color.New(color.Reset)
	}
}

func formatElapsed(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
