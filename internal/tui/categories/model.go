// Package categories содержит модель экрана списка категорий для TUI
package categories

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/data"
	"github.com/hazadus/go-podcasts/internal/utils"
	"github.com/hazadus/go-podcasts/internal/view"
)

var (
	titleStyle      = lipgloss.NewStyle().MarginLeft(2)
	itemStyle       = lipgloss.NewStyle().PaddingLeft(4)
	paginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle   = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// CategorySelectedMsg отправляется при выборе категории
type CategorySelectedMsg struct {
	CategoryID int
}

// categoryItem реализует интерфейс list.Item для категории
type categoryItem struct {
	category data.Category
	count    int
	hasEntry bool
}

func (i categoryItem) FilterValue() string {
	return i.category.Name
}

// categoryItemDelegate реализует отображение элементов списка
type categoryItemDelegate struct{}

func (d categoryItemDelegate) Height() int                             { return 1 }
func (d categoryItemDelegate) Spacing() int                            { return 0 }
func (d categoryItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d categoryItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(categoryItem)
	if !ok {
		return
	}

	// Форматируем строку в виде таблицы: ID | Название | Количество подкастов
	count := "—"
	if i.hasEntry {
		count = fmt.Sprintf("%d", i.count)
	}
	str := fmt.Sprintf("%-4d %-30s %s",
		i.category.ID,
		utils.TruncateString(i.category.Name, 30),
		count)

	fn := itemStyle.Render
	if index == m.Index() {
		selected := lipgloss.NewStyle().PaddingLeft(2).Foreground(view.Accent(i.category.Style))
		fn = func(s ...string) string {
			return selected.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка категорий
type Model struct {
	list     list.Model
	manager  *catalog.Manager
	quitting bool
}

// NewModel создает новую модель списка категорий
func NewModel(manager *catalog.Manager) *Model {
	// Создаем список
	l := list.New(items(manager), categoryItemDelegate{}, 0, 0)
	l.Title = "Категории"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:    l,
		manager: manager,
	}
}

// items преобразует категории каталога в элементы списка
func items(manager *catalog.Manager) []list.Item {
	categories := manager.Categories()
	result := make([]list.Item, len(categories))
	for i, c := range categories {
		count, ok := manager.PodcastCount(c.ID)
		result[i] = categoryItem{category: c, count: count, hasEntry: ok}
	}
	return result
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Select переводит курсор на категорию с указанным ID
func (m *Model) Select(categoryID int) {
	for i, item := range m.list.Items() {
		if c, ok := item.(categoryItem); ok && c.category.ID == categoryID {
			m.list.Select(i)
			return
		}
	}
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			// Получаем выбранный элемент
			selectedItem := m.list.SelectedItem()
			if selectedItem != nil {
				if item, ok := selectedItem.(categoryItem); ok {
					return m, func() tea.Msg {
						return CategorySelectedMsg{CategoryID: item.category.ID}
					}
				}
			}
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	listView := m.list.View()
	// Добавляем дополнительную справку
	extraHelp := helpStyle.Render("Enter: открыть категорию • /: поиск • q: выход")
	return listView + "\n" + extraHelp
}
