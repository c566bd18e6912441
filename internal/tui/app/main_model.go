// Package app содержит основную логику TUI приложения
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/logging"
	"github.com/hazadus/go-podcasts/internal/logging/events"
	"github.com/hazadus/go-podcasts/internal/playback"
	"github.com/hazadus/go-podcasts/internal/tui/categories"
	"github.com/hazadus/go-podcasts/internal/tui/category"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// CategoriesScreen - экран списка категорий
	CategoriesScreen ScreenType = iota
	// CategoryScreen - страница категории
	CategoryScreen
)

func (s ScreenType) String() string {
	switch s {
	case CategoriesScreen:
		return "categories"
	case CategoryScreen:
		return "category"
	default:
		return "unknown"
	}
}

// MainModel представляет главную модель TUI
type MainModel struct {
	manager         *catalog.Manager
	policy          playback.SelectPolicy
	currentScreen   ScreenType
	categoriesModel *categories.Model
	categoryModel   *category.Model
	windowSize      *tea.WindowSizeMsg // Последний размер окна для новых страниц
}

// NewMainModel создает новую главную модель
func NewMainModel(manager *catalog.Manager, policy playback.SelectPolicy) *MainModel {
	return &MainModel{
		manager:         manager,
		policy:          policy,
		currentScreen:   CategoriesScreen,
		categoriesModel: categories.NewModel(manager),
		categoryModel:   nil, // Будет создана при выборе категории
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.categoriesModel.Init()
}

// OpenCategory открывает страницу категории.
// Каждая страница получает собственный контейнер воспроизведения.
func (m *MainModel) OpenCategory(categoryID int) tea.Cmd {
	m.closePage()
	m.categoriesModel.Select(categoryID)
	m.currentScreen = CategoryScreen
	events.App.Screen(m.currentScreen.String())

	page, err := m.manager.Page(categoryID)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		events.Catalog.NotFound(categoryID)
		m.categoryModel = category.NewNotFoundModel(categoryID)
	case err != nil:
		logging.Error(err)
		m.categoryModel = category.NewNotFoundModel(categoryID)
	default:
		events.Catalog.Open(categoryID, len(page.Podcasts))
		container := playback.NewContainer(
			playback.WithPolicy(m.policy),
			playback.WithObserver(events.Playback.Observe),
		)
		m.categoryModel = category.NewModel(page, container)
	}

	if m.windowSize != nil {
		m.categoryModel.Update(*m.windowSize)
	}
	return m.categoryModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		switch msg.String() {
		case "ctrl+c":
			m.Close()
			return m, tea.Quit
		}

	case categories.CategorySelectedMsg:
		return m, m.OpenCategory(msg.CategoryID)

	case category.GoBackMsg:
		// Возвращаемся к списку категорий, контейнер страницы закрывается вместе с ней
		m.closePage()
		m.currentScreen = CategoriesScreen
		events.App.Screen(m.currentScreen.String())
		return m, nil

	case tea.WindowSizeMsg:
		m.windowSize = &msg
		// Размер нужен обоим экранам, чтобы при переключении не было скачков
		m.categoriesModel, cmd = m.categoriesModel.Update(msg)
		if m.categoryModel != nil {
			m.categoryModel.Update(msg)
		}
		return m, cmd
	}

	// Передаем сообщение активной модели
	switch m.currentScreen {
	case CategoriesScreen:
		m.categoriesModel, cmd = m.categoriesModel.Update(msg)

	case CategoryScreen:
		if m.categoryModel != nil {
			m.categoryModel, cmd = m.categoryModel.Update(msg)
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case CategoriesScreen:
		return m.categoriesModel.View()

	case CategoryScreen:
		if m.categoryModel != nil {
			return m.categoryModel.View()
		}
		return "Ошибка: модель страницы категории не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

// Close закрывает ресурсы главной модели
func (m *MainModel) Close() {
	m.closePage()
}

func (m *MainModel) closePage() {
	if m.categoryModel == nil {
		return
	}
	m.categoryModel.Container().Close()
	m.categoryModel = nil
}
