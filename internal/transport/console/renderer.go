package console

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/inarow/internal/apperror"
	"github.com/rocketscienceinc/inarow/internal/entity"
)

const (
	frameChar = "#"
	fieldChar = " "
)

// RenderOptions - how the board looks, colors are termenv color strings ("1", "#ff0000").
type RenderOptions struct {
	FieldSize   int
	ClearScreen bool
	FrameColor  string
	CircleColor string
	CrossColor  string
}

// Renderer - draws the board on a terminal output, following grid notifications.
// It keeps its own copy of the cells and never reads the grid.
type Renderer struct {
	logger *slog.Logger
	out    *termenv.Output

	width     int
	height    int
	fieldSize int
	clear     bool

	frameColor termenv.Color
	glyphColor map[entity.Marker]termenv.Color

	mu     sync.Mutex
	cells  []entity.Marker
	result string
}

func NewRenderer(logger *slog.Logger, out *termenv.Output, width, height int, opts RenderOptions) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board %dx%d", apperror.ErrInvalidArgument, height, width)
	}

	if opts.FieldSize < 1 || opts.FieldSize%2 == 0 {
		return nil, fmt.Errorf("%w: field size %d must be an odd number", apperror.ErrInvalidArgument, opts.FieldSize)
	}

	return &Renderer{
		logger:     logger.With("component", "console_renderer"),
		out:        out,
		width:      width,
		height:     height,
		fieldSize:  opts.FieldSize,
		clear:      opts.ClearScreen,
		frameColor: out.Color(opts.FrameColor),
		glyphColor: map[entity.Marker]termenv.Color{
			entity.Circle: out.Color(opts.CircleColor),
			entity.Cross:  out.Color(opts.CrossColor),
		},
		cells: make([]entity.Marker, width*height),
	}, nil
}

func (that *Renderer) BeforePlace(at entity.Coordinate, marker entity.Marker) {
	that.logger.Debug("placing marker", "coordinate", at.String(), "marker", marker.Tag())
}

// AfterPlace - draws the placed marker.
func (that *Renderer) AfterPlace(at entity.Coordinate, marker entity.Marker) {
	that.setCell(at, marker)
	that.Draw()
}

// BeforeRemove - erases the marker about to be removed.
func (that *Renderer) BeforeRemove(at entity.Coordinate, _ entity.Marker) {
	that.setCell(at, entity.MarkerNone)
	that.Draw()
}

// ShowResult - prints the round outcome below the board.
func (that *Renderer) ShowResult(result *entity.RoundResult) {
	that.mu.Lock()
	that.result = result.Message()
	that.mu.Unlock()

	that.Draw()
}

func (that *Renderer) ClearResult() {
	that.mu.Lock()
	that.result = ""
	that.mu.Unlock()

	that.Draw()
}

// Draw - redraws the whole board.
func (that *Renderer) Draw() {
	frame := that.Frame()

	if that.clear {
		that.out.ClearScreen()
	}

	if _, err := fmt.Fprint(that.out, frame); err != nil {
		that.logger.Error("failed to draw board", "error", err)
	}
}

// Frame - the board as text: frame, fields with glyphs at their centers,
// row numbers to the right and column numbers below.
func (that *Renderer) Frame() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	var sb strings.Builder

	step := that.fieldSize + 1
	center := that.fieldSize / 2
	bar := that.paint(strings.Repeat(frameChar, that.width*step+1), that.frameColor)
	border := that.paint(frameChar, that.frameColor)

	for row := 0; row < that.height; row++ {
		sb.WriteString(bar)
		sb.WriteString("\n")

		for y := 0; y < that.fieldSize; y++ {
			sb.WriteString(border)

			for col := 0; col < that.width; col++ {
				if y == center {
					sb.WriteString(strings.Repeat(fieldChar, center))
					sb.WriteString(that.glyph(that.cells[row*that.width+col]))
					sb.WriteString(strings.Repeat(fieldChar, center))
				} else {
					sb.WriteString(strings.Repeat(fieldChar, that.fieldSize))
				}

				sb.WriteString(border)
			}

			if y == center {
				sb.WriteString(" ")
				sb.WriteString(strconv.Itoa(row))
			}

			sb.WriteString("\n")
		}
	}

	sb.WriteString(bar)
	sb.WriteString("\n")
	sb.WriteString(that.columnLegend(step, center))
	sb.WriteString("\n")

	if that.result != "" {
		sb.WriteString(that.result)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Renderer) columnLegend(step, center int) string {
	var legend strings.Builder

	for col := 0; col < that.width; col++ {
		pos := 1 + center + col*step
		if legend.Len() < pos {
			legend.WriteString(strings.Repeat(" ", pos-legend.Len()))
		}

		legend.WriteString(strconv.Itoa(col))
	}

	return legend.String()
}

func (that *Renderer) glyph(marker entity.Marker) string {
	if marker.IsEmpty() {
		return fieldChar
	}

	return that.paint(marker.Tag(), that.glyphColor[marker])
}

func (that *Renderer) paint(text string, color termenv.Color) string {
	return that.out.String(text).Foreground(color).String()
}

func (that *Renderer) setCell(at entity.Coordinate, marker entity.Marker) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if at.Row < 0 || at.Row >= that.height || at.Col < 0 || at.Col >= that.width {
		that.logger.Warn("coordinate outside the rendered board", "coordinate", at.String())
		return
	}

	that.cells[at.Row*that.width+at.Col] = marker
}

// ShowScoreboard - prints the match summary after the last round.
func (that *Renderer) ShowScoreboard(scoreboard *entity.Scoreboard) {
	if _, err := fmt.Fprint(that.out, FormatScoreboard(scoreboard)); err != nil {
		that.logger.Error("failed to draw scoreboard", "error", err)
	}
}

func FormatScoreboard(scoreboard *entity.Scoreboard) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Match %s: %d round(s), %d draw(s)\n", scoreboard.MatchID, scoreboard.Rounds, scoreboard.Draws)

	for _, marker := range entity.Markers() {
		if wins, ok := scoreboard.Wins[marker]; ok {
			fmt.Fprintf(&sb, "  %s: %d win(s)\n", marker.Tag(), wins)
		}
	}

	if leaders := scoreboard.Leaders(); len(leaders) == 1 {
		fmt.Fprintf(&sb, "Leader: %s\n", leaders[0].Tag())
	}

	return sb.String()
}
