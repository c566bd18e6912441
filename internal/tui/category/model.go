// Package category содержит модель страницы категории для TUI
package category

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/logging"
	"github.com/hazadus/go-podcasts/internal/playback"
	"github.com/hazadus/go-podcasts/internal/view"
)

var (
	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// GoBackMsg отправляется для возврата к списку категорий
type GoBackMsg struct{}

// keyMap описывает клавиши страницы категории
type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PlayPause key.Binding
	Toggle    key.Binding
	Back      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Toggle, k.Back}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PlayPause, k.Toggle, k.Back},
	}
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "влево"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "вправо"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "вверх"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "вниз"),
	),
	PlayPause: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/пробел", "воспроизвести/пауза"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "пауза текущего"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "q"),
		key.WithHelp("esc/q", "назад"),
	),
}

// Model представляет модель страницы категории.
// Контейнер воспроизведения принадлежит странице и передается при создании.
type Model struct {
	page       catalog.Page
	notFoundID int
	found      bool
	container  *playback.Container
	help       help.Model
	cursor     int
	err        error
	width      int
	height     int
}

// NewModel создает страницу для загруженной категории
func NewModel(page catalog.Page, container *playback.Container) *Model {
	return &Model{
		page:      page,
		found:     true,
		container: container,
		help:      help.New(),
	}
}

// NewNotFoundModel создает страницу для отсутствующей категории
func NewNotFoundModel(categoryID int) *Model {
	return &Model{
		notFoundID: categoryID,
		help:       help.New(),
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Container возвращает контейнер воспроизведения страницы
func (m *Model) Container() *playback.Container {
	return m.container
}

// Cursor возвращает индекс карточки в фокусе
func (m *Model) Cursor() int {
	return m.cursor
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Back) {
			return m, func() tea.Msg {
				return GoBackMsg{}
			}
		}

		if !m.found || len(m.page.Podcasts) == 0 {
			return m, nil
		}

		cols := view.Columns(m.renderWidth())
		switch {
		case key.Matches(msg, keys.Left):
			m.moveCursor(-1)
		case key.Matches(msg, keys.Right):
			m.moveCursor(1)
		case key.Matches(msg, keys.Up):
			m.moveCursor(-cols)
		case key.Matches(msg, keys.Down):
			m.moveCursor(cols)
		case key.Matches(msg, keys.PlayPause):
			m.setError(m.container.PlayPause(m.page.Podcasts[m.cursor]))
		case key.Matches(msg, keys.Toggle):
			m.setError(m.container.TogglePlaying())
		}
	}

	return m, nil
}

// View отображает модель
func (m *Model) View() string {
	controls := controlsStyle.Render(m.help.View(keys))

	if !m.found {
		return fmt.Sprintf("%s\n%s", view.RenderNotFound(m.notFoundID), controls)
	}

	state, err := m.container.State()
	if err != nil {
		return fmt.Sprintf("%s\n\n%s", errorStyle.Render(err.Error()), controls)
	}

	page := view.Render(m.page, state, view.Options{
		Width:  m.renderWidth(),
		Cursor: m.cursor,
	})

	if m.err != nil {
		page += "\n" + errorStyle.Render(m.err.Error())
	}

	return fmt.Sprintf("%s\n%s", page, controls)
}

func (m *Model) renderWidth() int {
	if m.width <= 0 {
		return view.DefaultWidth
	}
	return m.width
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.page.Podcasts) {
		return
	}
	m.cursor = next
}

func (m *Model) setError(err error) {
	m.err = err
	if err != nil {
		logging.Error(err)
	}
}
