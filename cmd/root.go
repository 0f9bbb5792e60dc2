package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/toyvox/internal/arcade"
	"github.com/abhisek/toyvox/internal/config"
	"github.com/abhisek/toyvox/internal/logging"
	"github.com/abhisek/toyvox/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "toyvox",
	Short: "Spin, play, collect",
	Long:  "ToyVox arcade: earn tokens in trivia, spend them on the prize wheel, and unlock characters.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TOYVOX_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides TOYVOX_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(spinCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TOYVOX_DB env var, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveLogPath returns TOYVOX_LOG_FILE or <data dir>/toyvox.log.
func resolveLogPath(cfg *config.Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "toyvox.log"), nil
}

// session is an opened store plus the services built on it.
type session struct {
	svc     *arcade.Services
	closers []io.Closer
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i].Close()
	}
}

// openSession loads config, sets up logging, opens the store and builds the
// services. Interactive runs log to a file since the TUI owns the terminal.
func openSession(cmd *cobra.Command, interactive bool, opts arcade.Options) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	s := &session{}
	var log zerolog.Logger
	if interactive {
		path, err := resolveLogPath(cfg)
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		var closer io.Closer
		log, closer, err = logging.File(path, level)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, closer)
	} else {
		log = logging.Console(os.Stderr, level)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	s.closers = append(s.closers, st)

	svc, err := arcade.Build(cfg, st, log, opts)
	if err != nil {
		s.Close()
		return nil, err
	}
	log.Debug().Str("db", dbPath).Msg("session opened")
	s.svc = svc
	return s, nil
}
