package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/nudle/internal/config"
	"github.com/alexisbeaulieu97/nudle/internal/logger"
	"github.com/alexisbeaulieu97/nudle/internal/theme"
)

// detectBackground reports whether the terminal background is dark.
var detectBackground theme.BackgroundDetector = theme.TerminalBackground

// session bundles the long-lived services shared by every command.
type session struct {
	ID     string
	Config *config.Config
	Logger *logger.Logger
	Store  *theme.FileStore
	Theme  *theme.State

	closers []io.Closer
}

// openSession loads config and builds the session services. Problems that
// only degrade the session, such as an unwritable log file, are reported on
// warn instead of failing.
func openSession(flags *rootFlags, warn io.Writer) (*session, error) {
	path := flags.configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &session{Config: cfg}

	var writer io.Writer = io.Discard
	if cfg.Logging.File != "" {
		f, err := logger.OpenFile(cfg.Logging.File)
		if err != nil {
			fmt.Fprintf(warn, "warning: logging disabled: %v\n", err)
		} else {
			writer = f
			s.closers = append(s.closers, f)
		}
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable,
		Writer:        writer,
	})
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	s.Logger, s.ID = log.WithSession()

	s.Store = theme.NewFileStore(cfg.Theme.File)
	stored, hasStored, err := s.Store.Load()
	if err != nil {
		s.Logger.Error(err, "ignoring unreadable theme store")
		hasStored = false
	}
	initial := theme.Resolve(cfg.Theme.Default, stored, hasStored, detectBackground)
	s.Theme = theme.NewState(initial,
		theme.WithStore(s.Store),
		theme.WithLogger(s.Logger.WithComponent("theme")),
	)

	return s, nil
}

// Close releases files opened for the session.
func (s *session) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}
