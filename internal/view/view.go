// Package view отрисовывает страницу категории подкастов.
// Все функции пакета чистые: результат зависит только от аргументов.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/data"
	"github.com/hazadus/go-podcasts/internal/playback"
	"github.com/hazadus/go-podcasts/internal/utils"
)

// DefaultWidth используется, если ширина экрана неизвестна
const DefaultWidth = 100

// Тексты интерфейса
const (
	BackLabel     = "← Назад к категориям"
	NotFoundLabel = "Категория не найдена"
	EmptyLabel    = "В этой категории пока нет подкастов"
	HostPrefix    = "Ведущий: "
	PlayLabel     = "▶ Воспроизвести"
	PauseLabel    = "⏸ Пауза"
	NowPlayingTag = "Сейчас играет"
	PlayIcon      = "▶"
	PauseIcon     = "⏸"
)

const cardGap = 1

var (
	backStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	thumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	hostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#7c3aed"))

	notFoundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// Цвета оформления по тегу категории
var accentColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#dc2626"),
	"blue":   lipgloss.Color("#2563eb"),
	"green":  lipgloss.Color("#16a34a"),
	"yellow": lipgloss.Color("#ca8a04"),
	"pink":   lipgloss.Color("#db2777"),
	"purple": lipgloss.Color("#9333ea"),
}

// Options задает параметры отрисовки
type Options struct {
	Width  int // Ширина экрана, 0 - DefaultWidth
	Cursor int // Индекс карточки в фокусе, -1 - без фокуса
}

// Accent возвращает цвет оформления для тега категории
func Accent(style string) lipgloss.Color {
	if c, ok := accentColors[strings.ToLower(style)]; ok {
		return c
	}
	return lipgloss.Color("170")
}

// Columns возвращает число колонок сетки для ширины экрана
func Columns(width int) int {
	switch {
	case width < 60:
		return 1
	case width < 96:
		return 2
	default:
		return 3
	}
}

// ButtonLabel возвращает надпись кнопки карточки.
// "Пауза" показывается только для текущего подкаста, который играет.
func ButtonLabel(state playback.State, podcastID int) string {
	if state.IsPlayingItem(podcastID) {
		return PauseLabel
	}
	return PlayLabel
}

// Render отрисовывает страницу категории
func Render(page catalog.Page, state playback.State, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	accent := Accent(page.Category.Style)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		MarginBottom(1)

	sections := []string{
		backStyle.Render(BackLabel),
		titleStyle.Render(utils.TruncateString("Подкасты: "+page.Category.Name, width)),
	}

	if len(page.Podcasts) == 0 {
		sections = append(sections, emptyStyle.Render(EmptyLabel))
	} else {
		sections = append(sections, renderGrid(page.Podcasts, state, opts.Cursor, width, accent))
	}

	if bar := NowPlaying(state, width); bar != "" {
		sections = append(sections, "", bar)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderNotFound отрисовывает страницу для отсутствующей категории
func RenderNotFound(categoryID int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		backStyle.Render(BackLabel),
		notFoundStyle.Render(NotFoundLabel),
		hostStyle.Render(fmt.Sprintf("ID категории: %d", categoryID)),
	)
}

// NowPlaying отрисовывает панель текущего подкаста.
// Без выбранного подкаста возвращает пустую строку.
func NowPlaying(state playback.State, width int) string {
	if state.Current == nil {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}

	icon := PlayIcon
	if state.IsPlaying {
		icon = PauseIcon
	}

	barStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		Width(width)

	inner := width - lipgloss.Width(icon) - 2
	info := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(utils.TruncateString(state.Current.Title, inner)),
		hostStyle.Render(NowPlayingTag),
	)

	spacer := strings.Repeat(" ", max(1, width-lipgloss.Width(info)-lipgloss.Width(icon)))
	return barStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, info, spacer, icon))
}

// renderGrid раскладывает карточки по строкам сетки
func renderGrid(podcasts []data.PodcastSummary, state playback.State, cursor, width int, accent lipgloss.Color) string {
	cols := Columns(width)
	cardWidth := (width - cardGap*(cols-1)) / cols

	var rows []string
	for start := 0; start < len(podcasts); start += cols {
		end := min(start+cols, len(podcasts))

		var cards []string
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, renderCard(podcasts[i], state, i == cursor, cardWidth, accent))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard отрисовывает карточку подкаста
func renderCard(podcast data.PodcastSummary, state playback.State, focused bool, width int, accent lipgloss.Color) string {
	// Рамка и отступы занимают по два символа
	inner := max(1, width-4)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2)
	if focused {
		border = border.BorderForeground(accent)
	}

	button := buttonStyle
	if focused {
		button = button.Background(accent).Bold(true)
	}

	label := "[ " + ButtonLabel(state, podcast.ID) + " ]"

	content := lipgloss.JoinVertical(lipgloss.Left,
		thumbStyle.Render(utils.TruncateString("[обложка: "+podcast.Image+"]", inner)),
		lipgloss.NewStyle().Bold(true).Render(utils.TruncateString(podcast.Title, inner)),
		hostStyle.Render(HostPrefix+utils.TruncateString(podcast.Host, inner-lipgloss.Width(HostPrefix))),
		"",
		button.Render(utils.TruncateString(label, inner)),
	)

	return border.Render(content)
}
