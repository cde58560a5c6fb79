package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	Nick           string `env:"TWITCH_NICK"`
	Token          string `env:"TWITCH_TOKEN"`
	TwitchChannels string `env:"TWITCH_CHANNELS"`
	IRCURL         string `env:"IRC_URL" default:"wss://irc-ws.chat.twitch.tv:443"`

	WordPattern  string        `env:"WORD_PATTERN" default:"^[a-zA-ZàáèéìíòóùúÀÁÈÉÌÍÒÓÙÚ']+$"`
	IntervalLow  time.Duration `env:"INTERVAL_LOW" default:"600s"`
	IntervalHigh time.Duration `env:"INTERVAL_HIGH" default:"1200s"`
	MaxAge       time.Duration `env:"MAX_AGE" default:"1800s"`
	MaxBoost     int           `env:"MAX_BOOST" default:"10"`
	DefaultWord  string        `env:"DEFAULT_WORD"`
	RandomSeed   int64         `env:"RANDOM_SEED" default:"0"`

	// Derived during Load, never read from the environment.
	wordRegex *regexp.Regexp
	channels  []string
}

// WordRegex returns the compiled acceptance pattern for chat words.
func (c *Config) WordRegex() *regexp.Regexp { return c.wordRegex }

// Channels returns the normalized channel list ("#name", lowercase).
func (c *Config) Channels() []string { return c.channels }

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"TWITCH_NICK":     cfg.Nick,
		"TWITCH_TOKEN":    cfg.Token,
		"TWITCH_CHANNELS": cfg.TwitchChannels,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.IntervalLow <= 0 {
		return fmt.Errorf("INTERVAL_LOW must be positive, got %s", cfg.IntervalLow)
	}
	if cfg.IntervalHigh < cfg.IntervalLow {
		return fmt.Errorf("INTERVAL_HIGH (%s) must not be below INTERVAL_LOW (%s)", cfg.IntervalHigh, cfg.IntervalLow)
	}
	if cfg.MaxAge <= 0 {
		return fmt.Errorf("MAX_AGE must be positive, got %s", cfg.MaxAge)
	}
	if cfg.MaxBoost < 0 {
		return fmt.Errorf("MAX_BOOST must not be negative, got %d", cfg.MaxBoost)
	}

	regex, err := regexp.Compile(cfg.WordPattern)
	if err != nil {
		return fmt.Errorf("WORD_PATTERN is not a valid regular expression: %w", err)
	}
	cfg.wordRegex = regex

	cfg.Nick = strings.ToLower(cfg.Nick)
	if !strings.HasPrefix(cfg.Token, "oauth:") {
		cfg.Token = "oauth:" + cfg.Token
	}

	for _, raw := range strings.Split(cfg.TwitchChannels, ",") {
		channel := strings.ToLower(strings.TrimSpace(raw))
		if channel == "" {
			continue
		}
		if !strings.HasPrefix(channel, "#") {
			channel = "#" + channel
		}
		cfg.channels = append(cfg.channels, channel)
	}
	if len(cfg.channels) == 0 {
		return fmt.Errorf("TWITCH_CHANNELS must name at least one channel")
	}

	return nil
}
