package playback

import (
	"fmt"
	"strings"

	"github.com/hazadus/go-podcasts/internal/data"
)

// Phase описывает состояние контейнера в терминах конечного автомата
type Phase int

const (
	// PhaseIdle - ничего не выбрано, воспроизведения нет
	PhaseIdle Phase = iota
	// PhaseSelectedPaused - подкаст выбран и стоит на паузе
	PhaseSelectedPaused
	// PhaseSelectedPlaying - подкаст выбран и "играет"
	PhaseSelectedPlaying
)

// String возвращает название фазы
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSelectedPaused:
		return "Selected-Paused"
	case PhaseSelectedPlaying:
		return "Selected-Playing"
	default:
		return "Unknown"
	}
}

// State содержит текущее состояние воспроизведения страницы.
// IsPlaying == true возможно только при Current != nil.
type State struct {
	Current   *data.PodcastSummary
	IsPlaying bool
}

// Phase возвращает фазу автомата для состояния
func (s State) Phase() Phase {
	switch {
	case s.Current == nil:
		return PhaseIdle
	case s.IsPlaying:
		return PhaseSelectedPlaying
	default:
		return PhaseSelectedPaused
	}
}

// IsCurrent сообщает, является ли подкаст с указанным ID текущим
func (s State) IsCurrent(podcastID int) bool {
	return s.Current != nil && s.Current.ID == podcastID
}

// IsPlayingItem сообщает, "играет" ли подкаст с указанным ID
func (s State) IsPlayingItem(podcastID int) bool {
	return s.IsCurrent(podcastID) && s.IsPlaying
}

// clone возвращает копию состояния, не связанную с подкастом внутри контейнера
func (s State) clone() State {
	if s.Current != nil {
		current := *s.Current
		s.Current = &current
	}
	return s
}

// Valid проверяет инвариант состояния
func (s State) Valid() bool {
	return !s.IsPlaying || s.Current != nil
}

// SelectPolicy определяет, что происходит с флагом воспроизведения при выборе другого подкаста
type SelectPolicy int

const (
	// ResetOnSelect ставит новый выбранный подкаст на паузу
	ResetOnSelect SelectPolicy = iota
	// PreserveOnSelect оставляет флаг воспроизведения как есть
	PreserveOnSelect
)

// String возвращает имя политики в том виде, в каком оно задается в конфигурации
func (p SelectPolicy) String() string {
	switch p {
	case ResetOnSelect:
		return "reset"
	case PreserveOnSelect:
		return "preserve"
	default:
		return "unknown"
	}
}

// ParseSelectPolicy разбирает имя политики из конфигурации. Пустая строка означает reset.
func ParseSelectPolicy(name string) (SelectPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "reset":
		return ResetOnSelect, nil
	case "preserve":
		return PreserveOnSelect, nil
	default:
		return ResetOnSelect, fmt.Errorf("неизвестная политика выбора: %q", name)
	}
}
