package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/inarow/internal/config"
	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/grid"
	"github.com/rocketscienceinc/inarow/internal/pkg"
	"github.com/rocketscienceinc/inarow/internal/repository"
	"github.com/rocketscienceinc/inarow/internal/repository/storage"
	"github.com/rocketscienceinc/inarow/internal/service"
	"github.com/rocketscienceinc/inarow/internal/tictactoe"
	"github.com/rocketscienceinc/inarow/internal/transport/console"
	"github.com/rocketscienceinc/inarow/internal/usecase"
)

// RunApp - runs the application.
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

	matchID, err := pkg.GenerateMatchID()
	if err != nil {
		return err
	}

	roundRepo, closeRepo, err := newRoundRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	board, err := grid.New(conf.Board.Width, conf.Board.Height)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	out := termenv.NewOutput(os.Stdout)
	renderer, err := console.NewRenderer(logger, out, conf.Board.Width, conf.Board.Height, console.RenderOptions{
		FieldSize:   conf.Render.FieldSize,
		ClearScreen: conf.Render.ClearScreen,
		FrameColor:  conf.Render.FrameColor,
		CircleColor: conf.Render.CircleColor,
		CrossColor:  conf.Render.CrossColor,
	})
	if err != nil {
		return fmt.Errorf("could not create renderer: %w", err)
	}

	board.Attach(renderer)

	reader := console.NewReader(logger, os.Stdin, os.Stdout)
	moves := service.NewPlayerMoves(reader, service.NewBotService(time.Now().UnixNano()), conf.Bots)

	rules := entity.Rules{
		Width:     conf.Board.Width,
		Height:    conf.Board.Height,
		WinLength: conf.Board.WinLength,
		Players:   conf.Players,
	}

	controller, err := tictactoe.NewGameController(logger, board, moves, rules, conf.MaxMoveAttempts)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	manager := usecase.NewMatchManager(logger, matchID, controller, roundRepo, renderer, reader)

	log.Info("Starting match", "match_id", matchID, "storage", conf.Storage)
	renderer.Draw()

	scoreboard, err := manager.Run(ctx)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	renderer.ShowScoreboard(scoreboard)

	return nil
}

func newRoundRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.RoundRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryRoundRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewRoundRepository(redisStorage.Client), closeFn, nil
}
