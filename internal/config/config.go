// Package config resolves runtime settings from flags, TUTORDESK_*
// environment variables and an optional config.yaml, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/tutordesk/internal/logging"
	"github.com/abhisek/tutordesk/internal/state"
	"github.com/abhisek/tutordesk/internal/store"
)

// Keys shared by flags, env vars and the config file.
const (
	KeyDB       = "db"
	KeyLogFile  = "log-file"
	KeyLogLevel = "log-level"
	KeyView     = "view"
)

// Config is the resolved runtime configuration.
type Config struct {
	DBPath   string
	LogFile  string
	LogLevel string
	// View is the view to open after sign-in; empty means the dashboard.
	View state.View
	// File is the config file that was read, if any.
	File string
}

// Dir returns $XDG_CONFIG_HOME/tutordesk, falling back to ~/.config.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tutordesk"), nil
}

// RegisterFlags adds the persistent flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyDB, "", "path to the SQLite database")
	fs.String(KeyLogFile, "", "path to the log file")
	fs.String(KeyLogLevel, "", "log level (debug, info, warn, error)")
	fs.String(KeyView, "", "view to open after sign-in")
}

// Load resolves the configuration. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TUTORDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	dataDir, err := store.DataDir()
	if err != nil {
		return Config{}, err
	}
	logFile, err := logging.DefaultFile()
	if err != nil {
		return Config{}, err
	}
	v.SetDefault(KeyDB, filepath.Join(dataDir, "tutordesk.db"))
	v.SetDefault(KeyLogFile, logFile)
	v.SetDefault(KeyLogLevel, logging.DefaultOptions().Level)
	v.SetDefault(KeyView, "")

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		// Only flags the user actually set override lower layers.
		var bindErr error
		fs.Visit(func(f *pflag.Flag) {
			if bindErr == nil {
				bindErr = v.BindPFlag(f.Name, f)
			}
		})
		if bindErr != nil {
			return Config{}, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	cfg := Config{
		DBPath:   v.GetString(KeyDB),
		LogFile:  v.GetString(KeyLogFile),
		LogLevel: v.GetString(KeyLogLevel),
		View:     state.View(strings.ToLower(v.GetString(KeyView))),
		File:     v.ConfigFileUsed(),
	}
	if cfg.View != "" && !cfg.View.Known() {
		return Config{}, fmt.Errorf("unknown view %q (want one of %s)", cfg.View, viewNames())
	}
	return cfg, nil
}

// Logging returns logger options for this configuration.
func (c Config) Logging() logging.Options {
	opts := logging.DefaultOptions()
	opts.File = c.LogFile
	if c.LogLevel != "" {
		opts.Level = c.LogLevel
	}
	return opts
}

func viewNames() string {
	names := make([]string, len(state.Views))
	for i, v := range state.Views {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
