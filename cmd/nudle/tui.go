package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/nudle/internal/config"
	"github.com/alexisbeaulieu97/nudle/internal/search"
	"github.com/alexisbeaulieu97/nudle/internal/theme"
	"github.com/alexisbeaulieu97/nudle/internal/tui/app"
)

var errNotTerminal = errors.New("nudle needs an interactive terminal; stdout is not a TTY")

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// startLocation picks where the session opens: --url, else a query given as
// arguments, else the configured start location.
func startLocation(flags *rootFlags, args []string, cfg *config.Config) (string, error) {
	if flags.url != "" && len(args) > 0 {
		return "", fmt.Errorf("use either --url or a query, not both")
	}
	if flags.url != "" {
		return flags.url, nil
	}
	if len(args) > 0 {
		target, ok := search.Target(strings.Join(args, " "))
		if !ok {
			return "", fmt.Errorf("query is empty")
		}
		return target, nil
	}
	return cfg.StartURL, nil
}

func runTUI(cmd *cobra.Command, flags *rootFlags, args []string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	s, err := openSession(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	log := s.Logger.WithComponent("cli")

	start, err := startLocation(flags, args, s.Config)
	if err != nil {
		return err
	}

	opts := app.Options{
		StartURL:      start,
		Brand:         s.Config.Brand,
		UnicodeIcons:  s.Config.Theme.UnicodeIcons,
		FrameInterval: s.Config.Loading.FrameInterval,
		ResolveDelay:  s.Config.Loading.ResolveDelay,
		BarWidth:      s.Config.Loading.BarWidth,
		Logger:        s.Logger,
	}

	if s.Config.Theme.Watch {
		watcher, err := theme.NewWatcher(s.Store)
		if err != nil {
			log.Error(err, "theme watcher unavailable")
		} else {
			defer watcher.Close()
			opts.Watcher = watcher
		}
	}

	m, err := app.NewModel(s.Theme, opts)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"start": start,
		"theme": s.Theme.Current().String(),
	}).Info("launching")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "ui execution failed")
		return fmt.Errorf("failed to run ui: %w", err)
	}

	log.Info("ui closed")
	return nil
}
