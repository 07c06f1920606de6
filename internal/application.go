package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/player"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - runs the game on the process terminal until the human quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	err := Run(ctx, logger, conf, os.Stdin, os.Stdout)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, apperror.ErrInputClosed):
		log.Info("Game interrupted", "reason", err)
		return nil
	default:
		return err
	}
}

// Run - sets up both players on the given terminal streams and plays matches.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ui := console.New(in, out, consoleOptions(conf)...)
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok

	ui.Clear()
	ui.Announce(entity.Event{Kind: entity.EventWelcome})

	name, err := ui.ReadName(ctx)
	if err != nil {
		return fmt.Errorf("could not read name: %w", err)
	}

	marker, err := ui.ReadMarker(ctx)
	if err != nil {
		return fmt.Errorf("could not read marker: %w", err)
	}

	humanProfile := entity.NewPlayer(name, marker)
	computerProfile := player.NewComputerProfile(conf.Computer.Names, marker, random)

	ui.Announce(entity.Event{Kind: entity.EventOpponent, Player: computerProfile})
	log.Info("Players ready", "human", humanProfile.Name, "computer", computerProfile.Name)

	controller := tictactoe.NewMatchController(
		logger,
		entity.NewBoard(),
		player.NewHuman(humanProfile, ui),
		player.NewComputer(computerProfile, random),
		ui,
		ui,
		tictactoe.Options{
			WinsToMatch: conf.Match.WinsToMatch,
			FirstMover:  tictactoe.FirstMover(conf.Match.FirstMover),
		},
	)

	if err = controller.Play(ctx); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	return nil
}

func consoleOptions(conf *config.Config) []console.Option {
	var opts []console.Option

	if conf.Display.DisableColor {
		opts = append(opts, console.WithoutColor())
	}

	if conf.Display.DisableClear {
		opts = append(opts, console.WithoutClear())
	}

	return opts
}
