// Package tui содержит тесты для TUI компонентов
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/data"
	"github.com/hazadus/go-podcasts/internal/playback"
	"github.com/hazadus/go-podcasts/internal/tui/app"
	"github.com/hazadus/go-podcasts/internal/tui/categories"
	"github.com/hazadus/go-podcasts/internal/tui/category"
	"github.com/hazadus/go-podcasts/internal/view"
)

func newTestApp(policy playback.SelectPolicy) *App {
	return NewApp(catalog.NewManager(data.DefaultCatalog()), policy)
}

func update(t *testing.T, model *app.MainModel, msg tea.Msg) tea.Cmd {
	t.Helper()

	updated, cmd := model.Update(msg)
	if updated != model {
		t.Fatal("Update должен возвращать ту же главную модель")
	}
	return cmd
}

func TestMainModelRouting(t *testing.T) {
	model := newTestApp(playback.ResetOnSelect).NewModel(0)

	// Проверяем начальное состояние
	if model.CurrentScreen() != app.CategoriesScreen {
		t.Errorf("Expected initial screen to be CategoriesScreen, got %v", model.CurrentScreen())
	}

	// Тестируем переключение на страницу категории
	update(t, model, categories.CategorySelectedMsg{CategoryID: 2})
	if model.CurrentScreen() != app.CategoryScreen {
		t.Errorf("Expected screen to be CategoryScreen after CategorySelectedMsg, got %v", model.CurrentScreen())
	}
	if !strings.Contains(model.View(), "Подкасты: Technology") {
		t.Errorf("Ожидалась страница категории Technology, получено:\n%s", model.View())
	}

	// Тестируем возврат к списку категорий
	update(t, model, category.GoBackMsg{})
	if model.CurrentScreen() != app.CategoriesScreen {
		t.Errorf("Expected screen to be CategoriesScreen after GoBackMsg, got %v", model.CurrentScreen())
	}
}

func TestEachVisitGetsFreshState(t *testing.T) {
	model := newTestApp(playback.ResetOnSelect).NewModel(1)
	update(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})

	// Запускаем воспроизведение первого подкаста
	update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(model.View(), view.PauseLabel) {
		t.Fatal("Ожидалась кнопка паузы после двух нажатий")
	}

	// Уходим и возвращаемся на ту же страницу
	update(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	update(t, model, category.GoBackMsg{})
	update(t, model, categories.CategorySelectedMsg{CategoryID: 1})

	output := model.View()
	if strings.Contains(output, view.PauseLabel) || strings.Contains(output, view.NowPlayingTag) {
		t.Errorf("Новое посещение страницы должно начинаться в состоянии Idle, получено:\n%s", output)
	}
}

func TestNotFoundCategory(t *testing.T) {
	model := newTestApp(playback.ResetOnSelect).NewModel(0)

	for _, id := range []int{3, 42} {
		update(t, model, categories.CategorySelectedMsg{CategoryID: id})
		if !strings.Contains(model.View(), view.NotFoundLabel) {
			t.Errorf("Ожидалась заглушка для категории %d, получено:\n%s", id, model.View())
		}
		update(t, model, category.GoBackMsg{})
	}
}

func TestCtrlCQuits(t *testing.T) {
	model := newTestApp(playback.PreserveOnSelect).NewModel(2)

	cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected tea.Quit command for ctrl+c")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Ожидалось сообщение tea.QuitMsg, получено %T", cmd())
	}
}
