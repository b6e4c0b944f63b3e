// Package input turns prompt lines into validated moves. The textual
// convention is 1-based "col,row" with rows counted from the bottom of
// the printed grid; the core only ever sees the 0-based top-left
// coordinates produced here.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"minesweeper/internal/game"
	"minesweeper/internal/validator"
)

// Action is what the player asked for.
type Action int

const (
	ActionReveal Action = iota
	ActionFlag
	ActionHint
	ActionSave
	ActionQuit
)

var (
	ErrEmpty       = errors.New("empty command")
	ErrUnknownVerb = errors.New("unknown command")
	ErrSyntax      = errors.New("expected coordinates like: r 3,4")
	ErrRange       = errors.New("coordinates out of range")
)

// Move is a fully validated command. X and Y are already mapped to the
// board's 0-based top-left convention; HasCoords is false for hint, save
// and quit.
type Move struct {
	Action    Action
	X, Y      int
	HasCoords bool
}

// coords carries the raw 1-based pair through struct validation. The
// board is fixed at 9x9, so the bounds are static.
type coords struct {
	Col int `validate:"required,min=1,max=9"`
	Row int `validate:"required,min=1,max=9"`
}

// Parse reads one line. Verbs: r/reveal, f/flag, h/hint, s/save, q/quit;
// reveal and flag take a "col,row" pair, comma or space delimited. The
// row inversion y = size - row is the externally visible contract and is
// applied here, never in the core.
func Parse(line string) (*Move, error) {
	normalized := strings.ReplaceAll(line, ",", " ")
	fields := strings.Fields(strings.ToLower(normalized))
	if len(fields) == 0 {
		return nil, ErrEmpty
	}

	switch fields[0] {
	case "r", "reveal":
		return parseCoordMove(ActionReveal, fields[1:])
	case "f", "flag":
		return parseCoordMove(ActionFlag, fields[1:])
	case "h", "hint":
		return &Move{Action: ActionHint}, nil
	case "s", "save":
		return &Move{Action: ActionSave}, nil
	case "q", "quit":
		return &Move{Action: ActionQuit}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVerb, fields[0])
	}
}

func parseCoordMove(action Action, args []string) (*Move, error) {
	if len(args) != 2 {
		return nil, ErrSyntax
	}
	col, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrSyntax, args[0])
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrSyntax, args[1])
	}

	if err := validator.GetValidator().Struct(coords{Col: col, Row: row}); err != nil {
		return nil, fmt.Errorf("%w: %d,%d is not on the board", ErrRange, col, row)
	}

	return &Move{
		Action:    action,
		X:         col - 1,
		Y:         game.DefaultSize - row,
		HasCoords: true,
	}, nil
}

// DisplayCoords maps core coordinates back to the 1-based bottom-up pair
// the player typed, for messages like hint suggestions.
func DisplayCoords(x, y int) (col, row int) {
	return x + 1, game.DefaultSize - y
}
