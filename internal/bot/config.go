package bot

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken  string     `env:"DISCORD_TOKEN,notEmpty"`
	CommandPrefix string     `env:"COMMAND_PREFIX"         envDefault:"!"`
	LogLevel      slog.Level `env:"LOG_LEVEL"              envDefault:"INFO"`
	ShardID       int        `env:"SHARD_ID"               envDefault:"0"`
	ShardCount    int        `env:"SHARD_COUNT"            envDefault:"1"`
}

// LoadConfig loads configuration from environment variables.
// Variables from a .env file in the working directory are loaded first,
// without overriding the ones already set. A missing .env file is fine.
// Returns an error if required fields are missing.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
