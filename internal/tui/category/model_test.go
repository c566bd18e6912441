package category

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/data"
	"github.com/hazadus/go-podcasts/internal/logging"
	"github.com/hazadus/go-podcasts/internal/playback"
	"github.com/hazadus/go-podcasts/internal/view"
)

func createTestModel(t *testing.T) *Model {
	t.Helper()

	page, err := catalog.NewManager(data.DefaultCatalog()).Page(1)
	if err != nil {
		t.Fatalf("Ошибка загрузки страницы: %v", err)
	}

	model := NewModel(page, playback.NewContainer())
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model
}

func mustState(t *testing.T, m *Model) playback.State {
	t.Helper()

	state, err := m.Container().State()
	if err != nil {
		t.Fatalf("Ошибка чтения состояния: %v", err)
	}
	return state
}

func TestInitialView(t *testing.T) {
	model := createTestModel(t)

	output := model.View()
	if !strings.Contains(output, "Подкасты: News & Politics") {
		t.Errorf("Ожидался заголовок категории, получено:\n%s", output)
	}
	if strings.Contains(output, view.PauseLabel) {
		t.Error("В начальном состоянии не должно быть кнопки паузы")
	}
	if state := mustState(t, model); state.Phase() != playback.PhaseIdle {
		t.Errorf("Ожидалась фаза Idle, получено %s", state.Phase())
	}
}

func TestPlayPauseKeys(t *testing.T) {
	model := createTestModel(t)

	// Первое нажатие выбирает подкаст в фокусе
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	state := mustState(t, model)
	if !state.IsCurrent(101) || state.IsPlaying {
		t.Fatalf("Ожидался выбранный подкаст 101 на паузе, получено %+v", state)
	}

	// Пробел на том же подкасте запускает воспроизведение
	model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !mustState(t, model).IsPlayingItem(101) {
		t.Fatal("Ожидалось воспроизведение подкаста 101")
	}
	if !strings.Contains(model.View(), view.PauseLabel) {
		t.Error("Ожидалась кнопка паузы на играющем подкасте")
	}

	// Переходим на соседнюю карточку и выбираем ее
	model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	state = mustState(t, model)
	if !state.IsCurrent(102) || state.IsPlaying {
		t.Errorf("Ожидался выбранный подкаст 102 на паузе, получено %+v", state)
	}
}

func TestToggleKey(t *testing.T) {
	model := createTestModel(t)

	// Без выбранного подкаста переключение ничего не делает
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if state := mustState(t, model); state.Phase() != playback.PhaseIdle {
		t.Fatalf("Ожидалась фаза Idle, получено %s", state.Phase())
	}

	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if state := mustState(t, model); state.Phase() != playback.PhaseSelectedPlaying {
		t.Errorf("Ожидалась фаза Selected-Playing, получено %s", state.Phase())
	}
}

func TestCursorBounds(t *testing.T) {
	model := createTestModel(t)

	model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if model.Cursor() != 0 {
		t.Errorf("Курсор не должен уходить левее первой карточки, получено %d", model.Cursor())
	}

	for i := 0; i < 5; i++ {
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	}
	if model.Cursor() != 2 {
		t.Errorf("Курсор должен остановиться на последней карточке, получено %d", model.Cursor())
	}

	// При ширине 120 все три карточки в одной строке
	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	if model.Cursor() != 2 {
		t.Errorf("Курсор не должен уходить ниже последней строки, получено %d", model.Cursor())
	}
}

func TestGoBack(t *testing.T) {
	model := createTestModel(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected command to be returned for esc key")
	}
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Errorf("Ожидалось сообщение GoBackMsg, получено %T", cmd())
	}
}

func TestNotFoundModel(t *testing.T) {
	model := NewNotFoundModel(4)

	output := model.View()
	if !strings.Contains(output, view.NotFoundLabel) {
		t.Errorf("Ожидалась заглушка для отсутствующей категории, получено:\n%s", output)
	}

	// Клавиши воспроизведения ничего не делают, назад работает
	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Enter на странице без категории не должен возвращать команду")
	}
	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("Ожидалась команда возврата для 'q'")
	}
}

func TestClosedContainerShowsScopeError(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	defer logging.Configure("")

	model := createTestModel(t)
	model.Container().Close()

	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !playback.IsScopeError(model.err) {
		t.Errorf("Ожидалась ScopeError, получено %v", model.err)
	}

	if !strings.Contains(model.View(), "вне области страницы") {
		t.Error("Ожидалось сообщение об ошибке области видимости")
	}
}
