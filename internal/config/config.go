package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/exp/slices"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel        string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board           Board    `yaml:"board"`
	Players         []string `yaml:"players" env:"PLAYERS" env-default:"x,o"`
	Bots            []string `yaml:"bots" env:"BOTS"`
	MaxMoveAttempts int      `yaml:"max-move-attempts" env:"MAX_MOVE_ATTEMPTS" env-default:"0"`
	Storage         string   `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis           Redis    `yaml:"redis"`
	Render          Render   `yaml:"render"`
}

type Board struct {
	Width     int `yaml:"width" env:"BOARD_WIDTH" env-default:"3"`
	Height    int `yaml:"height" env:"BOARD_HEIGHT" env-default:"3"`
	WinLength int `yaml:"win-length" env:"BOARD_WIN_LENGTH" env-default:"3"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Render struct {
	FieldSize   int    `yaml:"field-size" env:"RENDER_FIELD_SIZE" env-default:"3"`
	ClearScreen bool   `yaml:"clear-screen" env:"RENDER_CLEAR_SCREEN"`
	FrameColor  string `yaml:"frame-color" env:"RENDER_FRAME_COLOR" env-default:"8"`
	CircleColor string `yaml:"circle-color" env:"RENDER_CIRCLE_COLOR" env-default:"4"`
	CrossColor  string `yaml:"cross-color" env:"RENDER_CROSS_COLOR" env-default:"1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Board.Width <= 0 || that.Board.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d has to be positive", ErrInvalidConfig, that.Board.Height, that.Board.Width)
	}

	if that.Board.WinLength <= 0 || that.Board.WinLength > max(that.Board.Width, that.Board.Height) {
		return fmt.Errorf("%w: win-length %d has to be in (0, %d]",
			ErrInvalidConfig, that.Board.WinLength, max(that.Board.Width, that.Board.Height))
	}

	if len(that.Players) == 0 {
		return fmt.Errorf("%w: at least one player is required", ErrInvalidConfig)
	}

	for _, bot := range that.Bots {
		if !slices.Contains(that.Players, bot) {
			return fmt.Errorf("%w: bot %q is not a player", ErrInvalidConfig, bot)
		}
	}

	if that.MaxMoveAttempts < 0 {
		return fmt.Errorf("%w: max-move-attempts cannot be negative", ErrInvalidConfig)
	}

	if that.Storage != StorageMemory && that.Storage != StorageRedis {
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, that.Storage)
	}

	if that.Render.FieldSize < 1 || that.Render.FieldSize%2 == 0 {
		return fmt.Errorf("%w: render field-size %d has to be odd", ErrInvalidConfig, that.Render.FieldSize)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
