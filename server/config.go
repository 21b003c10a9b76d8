package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"gridsnake/game"
)

// Server defaults
const (
	DefaultAddr      = ":8080"
	DefaultStaticDir = "../client"
	WebSocketPath    = "/ws"

	// Connection limits
	DefaultMaxPlayers = 100
	DefaultIPCooldown = 2 * time.Second

	// Leaderboard
	DefaultLeaderboardSize = 10

	// MaxNameLength caps display names, in runes.
	MaxNameLength = 16
)

// Environment variables read by LoadConfig.
const (
	EnvAddr            = "SNAKE_ADDR"
	EnvStaticDir       = "SNAKE_STATIC_DIR"
	EnvMaxPlayers      = "SNAKE_MAX_PLAYERS"
	EnvIPCooldown      = "SNAKE_IP_COOLDOWN"
	EnvLeaderboardSize = "SNAKE_LEADERBOARD_SIZE"
	EnvGridHeight      = "SNAKE_GRID_HEIGHT"
	EnvGridWidth       = "SNAKE_GRID_WIDTH"
	EnvTick            = "SNAKE_TICK"
	EnvFoodDelay       = "SNAKE_FOOD_DELAY"
	EnvPointsPerFood   = "SNAKE_POINTS_PER_FOOD"
	EnvMaxObstacles    = "SNAKE_MAX_OBSTACLES"
)

// Config is everything the server needs at startup.
type Config struct {
	Addr            string
	StaticDir       string
	MaxPlayers      int
	IPCooldown      time.Duration
	LeaderboardSize int
	Game            game.Config
}

// DefaultConfig returns the server defaults around game.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		Addr:            DefaultAddr,
		StaticDir:       DefaultStaticDir,
		MaxPlayers:      DefaultMaxPlayers,
		IPCooldown:      DefaultIPCooldown,
		LeaderboardSize: DefaultLeaderboardSize,
		Game:            game.DefaultConfig(),
	}
}

// LoadConfig reads envFile into the environment if it exists (variables
// already set win), then builds a Config from the environment.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return configFromEnv(os.LookupEnv)
}

// configFromEnv overlays the variables found by lookup on DefaultConfig.
func configFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	p := envParser{lookup: lookup}

	p.str(EnvAddr, &cfg.Addr)
	p.str(EnvStaticDir, &cfg.StaticDir)
	p.int(EnvMaxPlayers, &cfg.MaxPlayers)
	p.duration(EnvIPCooldown, &cfg.IPCooldown)
	p.int(EnvLeaderboardSize, &cfg.LeaderboardSize)
	p.int(EnvGridHeight, &cfg.Game.Height)
	p.int(EnvGridWidth, &cfg.Game.Width)
	p.duration(EnvTick, &cfg.Game.TickInterval)
	p.duration(EnvFoodDelay, &cfg.Game.FoodRespawnDelay)
	p.int(EnvPointsPerFood, &cfg.Game.PointsPerFood)
	p.int(EnvMaxObstacles, &cfg.Game.MaxObstacles)
	if p.err != nil {
		return Config{}, p.err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the server fields and the embedded game config.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: empty listen address")
	}
	if c.MaxPlayers <= 0 {
		return fmt.Errorf("config: max players must be positive, got %d", c.MaxPlayers)
	}
	if c.IPCooldown < 0 {
		return fmt.Errorf("config: negative ip cooldown %v", c.IPCooldown)
	}
	if c.LeaderboardSize < 0 {
		return fmt.Errorf("config: negative leaderboard size %d", c.LeaderboardSize)
	}
	return c.Game.Validate()
}

// envParser keeps the first parse error so callers check once.
type envParser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *envParser) str(key string, dst *string) {
	if v, ok := p.lookup(key); ok && v != "" {
		*dst = v
	}
}

func (p *envParser) int(key string, dst *int) {
	v, ok := p.lookup(key)
	if !ok || v == "" || p.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.err = fmt.Errorf("config: %s: %w", key, err)
		return
	}
	*dst = n
}

func (p *envParser) duration(key string, dst *time.Duration) {
	v, ok := p.lookup(key)
	if !ok || v == "" || p.err != nil {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.err = fmt.Errorf("config: %s: %w", key, err)
		return
	}
	*dst = d
}
