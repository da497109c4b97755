package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/staffdesk/internal/catalog"
	"github.com/jask/staffdesk/internal/config"
	"github.com/jask/staffdesk/internal/logging"
	"github.com/jask/staffdesk/internal/registration"
	"github.com/jask/staffdesk/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		logger.Error("load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		log.Fatalf("catalog: %v", err)
	}

	app := tui.New(cfg.UI.Title, logger,
		registration.WithCatalog(cat),
		registration.WithPrefix(cfg.Registration.NumberPrefix),
	)
	logger.Info("staffdesk started", zap.Int("skills", len(cat.Skills())))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		_ = logger.Sync()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}
