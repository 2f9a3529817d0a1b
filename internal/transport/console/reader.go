package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
	"github.com/rocketscienceinc/inarow/internal/tictactoe"
)

type inputLine struct {
	text string
	err  error
}

// Reader - line based move source and replay prompter.
// Lines are read on a background goroutine so that a canceled context unblocks a pending prompt.
type Reader struct {
	logger *slog.Logger
	in     io.Reader
	out    io.Writer

	once  sync.Once
	lines chan inputLine
}

func NewReader(logger *slog.Logger, in io.Reader, out io.Writer) *Reader {
	return &Reader{
		logger: logger.With("component", "console_reader"),
		in:     in,
		out:    out,
		lines:  make(chan inputLine),
	}
}

// NextMove - asks the player for a "<row>x<col>" coordinate until one parses.
func (that *Reader) NextMove(ctx context.Context, prompt tictactoe.MovePrompt, _ []entity.Coordinate) (entity.Coordinate, error) {
	if prompt.Rejected != nil {
		that.printf("Cannot use that field: %v\n", prompt.Rejected)
	}

	for {
		that.printf("Player %s, your move (row%scol): ", prompt.Player.ID, entity.CoordinateSeparator)

		text, err := that.readLine(ctx)
		if err != nil {
			return entity.Coordinate{}, err
		}

		at, err := entity.ParseCoordinate(text)
		if err != nil {
			that.logger.Debug("invalid coordinate input", "input", text, "error", err)
			that.printf("Invalid input: %v\n", err)

			continue
		}

		return at, nil
	}
}

// PlayAgain - asks whether another round should be played.
func (that *Reader) PlayAgain(ctx context.Context) (bool, error) {
	for {
		that.printf("Play again? (y/n): ")

		text, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(text) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			that.printf("Please answer y or n.\n")
		}
	}
}

func (that *Reader) readLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", apperror.ErrMoveCanceled, ctx.Err())
	case next, ok := <-that.lines:
		if !ok {
			return "", fmt.Errorf("%w: %w", apperror.ErrMoveCanceled, io.EOF)
		}

		if next.err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrMoveCanceled, next.err)
		}

		return strings.TrimSpace(next.text), nil
	}
}

func (that *Reader) scan() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- inputLine{text: scanner.Text()}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		that.lines <- inputLine{err: err}
	}
}

func (that *Reader) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write prompt", "error", err)
	}
}
