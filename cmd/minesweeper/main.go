package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"minesweeper/internal/config"
	"minesweeper/internal/game"
	"minesweeper/internal/hint"
	"minesweeper/internal/input"
	"minesweeper/internal/logger"
	"minesweeper/internal/render"
	"minesweeper/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closeLog, err := logger.Init(cfg.LogPath, cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	gameStore, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer gameStore.Close()

	state, err := loadOrNew(ctx, gameStore)
	if err != nil {
		return err
	}

	renderer := render.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for !state.Terminal() {
		renderer.Draw(state)
		fmt.Print("[r]eveal, [f]lag, [h]int, [s]ave, [q]uit > ")

		if !scanner.Scan() {
			state.Quit()
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		move, err := input.Parse(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := apply(ctx, state, move, gameStore); err != nil {
			return err
		}
	}

	renderer.Draw(state)
	renderer.Banner(state)
	slog.Info("game over", "game_id", state.ID, "status", state.Status.String(), "elapsed", state.Elapsed())

	// A finished game has no resumable state.
	if state.Status == game.StatusExploded || state.Status == game.StatusWon {
		if err := gameStore.Delete(ctx); err != nil {
			slog.Error("failed to delete finished save", "error", err)
		}
	}
	return scanner.Err()
}

// loadOrNew resumes the saved game when one exists and starts fresh
// otherwise.
func loadOrNew(ctx context.Context, gameStore store.GameStore) (*game.State, error) {
	snap, err := gameStore.Load(ctx)
	if errors.Is(err, store.ErrNoSave) {
		state := game.NewState(game.DefaultRand())
		slog.Info("starting new game", "game_id", state.ID)
		return state, nil
	}
	if err != nil {
		return nil, err
	}

	state, err := game.Restore(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to restore save: %w", err)
	}
	fmt.Println("resuming saved game")
	slog.Info("resumed saved game", "game_id", state.ID, "elapsed_base", state.ElapsedBase)
	return state, nil
}

// apply resolves one validated move against the game.
func apply(ctx context.Context, state *game.State, move *input.Move, gameStore store.GameStore) error {
	switch move.Action {
	case input.ActionReveal:
		if err := state.RevealAt(move.X, move.Y); err != nil {
			return err
		}
		slog.Debug("reveal", "game_id", state.ID, "x", move.X, "y", move.Y, "status", state.Status.String())

	case input.ActionFlag:
		if err := state.ToggleFlagAt(move.X, move.Y); err != nil {
			return err
		}
		slog.Debug("toggle flag", "game_id", state.ID, "x", move.X, "y", move.Y)

	case input.ActionHint:
		printHint(state)

	case input.ActionSave:
		if err := gameStore.Save(ctx, state.Snapshot()); err != nil {
			return err
		}
		fmt.Println("game saved")
		slog.Info("game saved", "game_id", state.ID)

	case input.ActionQuit:
		state.Quit()
	}
	return nil
}

func printHint(state *game.State) {
	s := hint.Next(state.Board, game.DefaultRand())
	if s == nil {
		fmt.Println("hint: nothing left to play")
		return
	}

	col, row := input.DisplayCoords(s.X, s.Y)
	verb := "reveal"
	if s.Kind == hint.KindFlag {
		verb = "flag"
	}
	if s.Certain {
		fmt.Printf("hint: %s %d,%d\n", verb, col, row)
	} else {
		fmt.Printf("hint: no certain move, try %d,%d\n", col, row)
	}
}
