package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-animals/internal/assets"
	"github.com/vovakirdan/flappy-animals/internal/config"
	"github.com/vovakirdan/flappy-animals/internal/game"
	"github.com/vovakirdan/flappy-animals/internal/highscore"
	"github.com/vovakirdan/flappy-animals/internal/storage"
)

// deps holds everything a game session needs, shared between sessions.
type deps struct {
	cfg       config.Config
	assets    *assets.Store
	highScore highscore.Store
	history   *storage.Store
	logger    *log.Logger
	logFile   io.Closer
}

// loadConfig reads the config and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagHighScore != "" {
		cfg.HighScore.Backend = config.BackendFile
		cfg.HighScore.Path = flagHighScore
	}
	if flagDBPath != "" {
		cfg.History.Path = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	return cfg, nil
}

// newLogger creates the process logger. Interactive play must not write to
// the terminal, so logs go to the configured file; toStderr forces stderr.
func newLogger(cfg config.LoggingConfig, toStderr bool) (*log.Logger, io.Closer) {
	var out io.Writer = io.Discard
	var closer io.Closer

	switch {
	case toStderr:
		out = os.Stderr
	case cfg.File != "":
		path, err := config.ExpandPath(cfg.File)
		if err == nil {
			err = os.MkdirAll(filepath.Dir(path), 0o755)
		}
		if err == nil {
			var f *os.File
			f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				out, closer = f, f
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "flappy",
	})
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger, closer
}

// openDeps loads the config, assets and stores. Missing assets are fatal;
// an unavailable history database is not.
func openDeps(toStderr bool) (*deps, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logFile := newLogger(cfg.Logging, toStderr)
	d := &deps{cfg: cfg, logger: logger, logFile: logFile}

	d.assets, err = assets.Load()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("cannot load assets: %w", err)
	}

	d.highScore, err = highscore.Open(cfg.HighScore)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("cannot open high score store: %w", err)
	}

	if cfg.History.Enabled {
		store, err := storage.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("run history disabled", "error", err)
		} else {
			d.history = store
		}
	}

	return d, nil
}

// newState creates a game wired to the shared stores.
func (d *deps) newState(sounds game.Sounds, logger *log.Logger) *game.State {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:    d.cfg,
		Assets:    d.assets,
		HighScore: d.highScore,
		Sounds:    sounds,
		Logger:    logger,
		Seed:      seed,
	}
	if d.history != nil {
		opts.History = d.history
	}
	return game.New(opts)
}

// Close releases the history database and the log file.
func (d *deps) Close() {
	if d.history != nil {
		if err := d.history.Close(); err != nil {
			d.logger.Warn("cannot close run history", "error", err)
		}
	}
	if d.logFile != nil {
		d.logFile.Close()
	}
}
