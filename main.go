package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/devanshm/tiffin/internal/config"
	"github.com/devanshm/tiffin/internal/remind"
	"github.com/devanshm/tiffin/internal/store"
	"github.com/devanshm/tiffin/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	s, err := store.New(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if removed, err := s.CleanupOrders(); err != nil {
		log.Warn("cleanup orders", zap.Error(err))
	} else if removed > 0 {
		log.Info("removed duplicate orders", zap.Int("count", removed))
	}

	notifier := tui.NewProgramNotifier()
	sched := remind.NewScheduler(s, notifier, log)
	defer sched.Stop()

	app := tui.NewApp(s, sched, log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	notifier.SetProgram(p)
	sched.Reschedule()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
