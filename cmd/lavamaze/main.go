// Package main is the entry point for lavamaze.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/lavamaze/internal/game"
	"github.com/samdwyer/lavamaze/internal/gamedata"
	"github.com/samdwyer/lavamaze/internal/logging"
	"github.com/samdwyer/lavamaze/internal/telemetry"
	"github.com/samdwyer/lavamaze/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lavamaze: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; variables may be set directly
	envErr := godotenv.Load()

	cfg := game.LoadConfig()

	logCloser, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.WithError(envErr).Warn(".env file not loaded")
	}

	if err := ui.RequireTerminal(); err != nil {
		return err
	}
	if w, h := ui.TerminalSize(); !ui.FitsTerminal(w, h) {
		log.WithFields(log.Fields{"width": w, "height": h}).Warn("terminal smaller than the full layout")
	}

	tiles, err := gamedata.LoadTileRegistry()
	if err != nil {
		return fmt.Errorf("load tiles: %w", err)
	}
	catalog, err := gamedata.LoadCatalogOrDefault(cfg.Language)
	if catalog == nil {
		return fmt.Errorf("load translations: %w", err)
	}
	if err != nil {
		log.WithError(err).Warn("language unavailable, using default")
	}

	ctx := context.Background()

	if telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Not fatal - the game runs without tracing
			log.WithError(err).Warn("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Warn("telemetry shutdown failed")
				}
			}()
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Close()

	// tcell only watches SIGWINCH; other signals end the loop so the
	// terminal is restored before exit.
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	go func() {
		<-sigCtx.Done()
		screen.Interrupt()
	}()

	state, err := play(ctx, screen, tiles, catalog)
	screen.Close()
	stop()
	if err != nil {
		return err
	}

	if state.IsTerminal() {
		return ui.PrintOutcome(os.Stdout, catalog, state == game.StateWon)
	}
	return nil
}

// play runs the game loop, restoring the terminal before any panic
// propagates.
func play(ctx context.Context, screen *ui.Screen, tiles *gamedata.TileRegistry, catalog *gamedata.Catalog) (state game.State, err error) {
	defer func() {
		if r := recover(); r != nil {
			screen.Close()
			log.WithField("panic", r).Error("game crashed")
			panic(r)
		}
	}()

	return game.New(screen, tiles, catalog, nil).Run(ctx)
}
