package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/config"
	"github.com/hazadus/go-podcasts/internal/data"
	"github.com/hazadus/go-podcasts/internal/logging"
	"github.com/hazadus/go-podcasts/internal/logging/events"
)

const (
	defaultConfigPath = "~/.podcasts.yaml"
)

// Application содержит конфигурацию и каталог, общие для всех команд
type Application struct {
	Config     *config.Config
	Catalog    *data.Catalog
	configPath string
}

// load загружает конфигурацию и каталог, если они еще не загружены
func (app *Application) load() error {
	if app.Config != nil && app.Catalog != nil {
		return nil
	}

	cfg, err := config.LoadConfig(app.configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	logging.Configure(cfg.LogFile)
	logging.SetTraceEnabled(cfg.Trace)

	podcastCatalog := data.NewCatalog()
	if err := podcastCatalog.LoadData(cfg.CatalogFile); err != nil {
		logging.Error(err)
		return fmt.Errorf("ошибка загрузки каталога: %w", err)
	}

	app.Config = cfg
	app.Catalog = podcastCatalog

	events.App.Start(map[string]interface{}{
		"config":        app.configPath,
		"catalog_file":  cfg.CatalogFile,
		"select_policy": cfg.SelectPolicy,
	})
	return nil
}

// Manager возвращает доступ только для чтения к каталогу
func (app *Application) Manager() *catalog.Manager {
	return catalog.NewManager(app.Catalog)
}

// SaveData сохраняет каталог в файл из конфигурации
func (app *Application) SaveData() error {
	if err := os.MkdirAll(filepath.Dir(app.Config.CatalogFile), 0o755); err != nil {
		return fmt.Errorf("ошибка создания директории каталога: %w", err)
	}
	return app.Catalog.SaveData(app.Config.CatalogFile)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &Application{configPath: defaultConfigPath}

	if err := app.createRootCommand(ctx).ExecuteContext(ctx); err != nil {
		logging.Error(err)
		os.Exit(1)
	}
}
