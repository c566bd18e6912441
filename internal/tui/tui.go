// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/playback"
	"github.com/hazadus/go-podcasts/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	manager *catalog.Manager
	policy  playback.SelectPolicy
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(manager *catalog.Manager, policy playback.SelectPolicy) *App {
	return &App{
		manager: manager,
		policy:  policy,
	}
}

// NewModel создает главную модель. Если categoryID > 0, сразу открывается страница категории.
func (tuiApp *App) NewModel(categoryID int) *app.MainModel {
	model := app.NewMainModel(tuiApp.manager, tuiApp.policy)
	if categoryID > 0 {
		model.OpenCategory(categoryID)
	}
	return model
}

// Run запускает TUI приложение
func (tuiApp *App) Run(categoryID int) error {
	// Создаем модель для Bubble Tea
	model := tuiApp.NewModel(categoryID)

	// Создаем программу Bubble Tea
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Запускаем программу
	_, err := p.Run()

	// Закрываем контейнер открытой страницы после завершения программы
	model.Close()

	return err
}
