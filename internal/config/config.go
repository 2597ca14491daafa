// Package config materializes runtime settings from an optional .env file,
// PANTRY_* environment variables and an optional YAML config file.
package config

import (
    "errors"
    "fmt"
    "log/slog"
    "os"
    "strings"
    "time"

    "github.com/joho/godotenv"
    "github.com/spf13/viper"
)

const envPrefix = "PANTRY"

// Config keys. Each maps to PANTRY_<KEY> in the environment.
const (
    KeyAddr            = "addr"
    KeyLogLevel        = "log_level"
    KeyLogFormat       = "log_format"
    KeySeed            = "seed"
    KeyShutdownTimeout = "shutdown_timeout"
)

// Config is the full runtime configuration surface.
type Config struct {
    Addr            string
    LogLevel        string
    LogFormat       string
    Seed            bool
    ShutdownTimeout time.Duration
}

// Load reads envFile (or .env when empty) and then resolves every key from the
// environment, the config file at cfgFile if given, and defaults, in that order.
func Load(envFile, cfgFile string) (*Config, error) {
    if envFile != "" {
        if err := godotenv.Load(envFile); err != nil {
            return nil, fmt.Errorf("load env file %s: %w", envFile, err)
        }
    } else {
        // A missing .env is fine; configuration may come from the environment directly.
        _ = godotenv.Load()
    }

    v := viper.New()
    v.SetDefault(KeyAddr, ":8080")
    v.SetDefault(KeyLogLevel, "info")
    v.SetDefault(KeyLogFormat, "json")
    v.SetDefault(KeySeed, true)
    v.SetDefault(KeyShutdownTimeout, 10*time.Second)
    v.SetEnvPrefix(envPrefix)
    v.AutomaticEnv()

    if cfgFile != "" {
        v.SetConfigFile(cfgFile)
        if err := v.ReadInConfig(); err != nil {
            var notFound viper.ConfigFileNotFoundError
            if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
                return nil, fmt.Errorf("config file %s not found: %w", cfgFile, err)
            }
            return nil, fmt.Errorf("read config: %w", err)
        }
    }

    cfg := &Config{
        Addr:            strings.TrimSpace(v.GetString(KeyAddr)),
        LogLevel:        v.GetString(KeyLogLevel),
        LogFormat:       strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
        Seed:            v.GetBool(KeySeed),
        ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
    }
    if err := cfg.Validate(); err != nil {
        return nil, err
    }
    return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
    if c == nil {
        return errors.New("config is nil")
    }
    if c.Addr == "" {
        return errors.New("PANTRY_ADDR must not be empty")
    }
    switch c.LogFormat {
    case "json", "text":
    default:
        return fmt.Errorf("PANTRY_LOG_FORMAT must be json or text, got %q", c.LogFormat)
    }
    if c.ShutdownTimeout <= 0 {
        return errors.New("PANTRY_SHUTDOWN_TIMEOUT must be positive")
    }
    return nil
}

// parseLogLevel maps config values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "debug":
        return slog.LevelDebug
    case "warn", "warning":
        return slog.LevelWarn
    case "error", "err":
        return slog.LevelError
    default:
        return slog.LevelInfo
    }
}

// Logger builds the process logger. Output goes to stdout.
func (c *Config) Logger() *slog.Logger {
    opts := &slog.HandlerOptions{Level: parseLogLevel(c.LogLevel)}
    if c.LogFormat == "text" {
        return slog.New(slog.NewTextHandler(os.Stdout, opts))
    }
    return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
