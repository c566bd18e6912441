// Package playback содержит контейнер состояния воспроизведения одной страницы категории.
//
// Контейнер ничего не воспроизводит: он хранит выбранный подкаст и флаг
// воспроизведения. Экземпляр живет ровно столько, сколько открыта страница,
// и не предназначен для конкурентного использования: все вызовы идут из
// одного цикла обработки событий.
package playback

import (
	"github.com/google/uuid"

	"github.com/hazadus/go-podcasts/internal/data"
)

// Op обозначает операцию, изменившую состояние
type Op string

// Операции контейнера
const (
	OpSelect Op = "select"
	OpToggle Op = "toggle"
	OpClose  Op = "close"
)

// Event отправляется наблюдателям после каждого изменения состояния
type Event struct {
	ViewID uuid.UUID
	Op     Op
	State  State
}

// Option настраивает контейнер при создании
type Option func(*Container)

// WithPolicy задает политику выбора подкаста
func WithPolicy(policy SelectPolicy) Option {
	return func(c *Container) {
		c.policy = policy
	}
}

// WithObserver добавляет наблюдателя за изменениями состояния
func WithObserver(fn func(Event)) Option {
	return func(c *Container) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// Container хранит состояние воспроизведения одной страницы
type Container struct {
	viewID    uuid.UUID
	policy    SelectPolicy
	state     State
	closed    bool
	observers []func(Event)
}

// NewContainer создает контейнер в состоянии Idle
func NewContainer(opts ...Option) *Container {
	c := &Container{
		viewID: uuid.New(),
		policy: ResetOnSelect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ViewID возвращает идентификатор страницы, которой принадлежит контейнер
func (c *Container) ViewID() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	return c.viewID
}

// Policy возвращает политику выбора подкаста
func (c *Container) Policy() SelectPolicy {
	if c == nil {
		return ResetOnSelect
	}
	return c.policy
}

// State возвращает текущее состояние
func (c *Container) State() (State, error) {
	if err := c.checkScope("State"); err != nil {
		return State{}, err
	}
	return c.state.clone(), nil
}

// SelectItem делает подкаст текущим. Флаг воспроизведения меняется согласно политике.
func (c *Container) SelectItem(item data.PodcastSummary) error {
	if err := c.checkScope("SelectItem"); err != nil {
		return err
	}

	selected := item
	c.state.Current = &selected
	if c.policy == ResetOnSelect {
		c.state.IsPlaying = false
	}

	c.notify(OpSelect)
	return nil
}

// TogglePlaying переключает флаг воспроизведения.
// Без выбранного подкаста вызов ничего не меняет.
func (c *Container) TogglePlaying() error {
	if err := c.checkScope("TogglePlaying"); err != nil {
		return err
	}

	if c.state.Current == nil {
		return nil
	}

	c.state.IsPlaying = !c.state.IsPlaying
	c.notify(OpToggle)
	return nil
}

// PlayPause обрабатывает нажатие кнопки на карточке подкаста:
// для текущего подкаста переключает воспроизведение, для другого выбирает его.
func (c *Container) PlayPause(item data.PodcastSummary) error {
	if err := c.checkScope("PlayPause"); err != nil {
		return err
	}

	if c.state.IsCurrent(item.ID) {
		return c.TogglePlaying()
	}
	return c.SelectItem(item)
}

// Close завершает жизнь контейнера вместе со страницей. Повторный вызов ничего не делает.
func (c *Container) Close() {
	if c == nil || c.closed {
		return
	}
	c.state = State{}
	c.closed = true
	c.notify(OpClose)
}

// Closed сообщает, закрыт ли контейнер
func (c *Container) Closed() bool {
	return c == nil || c.closed
}

func (c *Container) checkScope(op string) error {
	if c == nil || c.closed {
		return &ScopeError{Op: op}
	}
	return nil
}

func (c *Container) notify(op Op) {
	event := Event{ViewID: c.viewID, Op: op, State: c.state.clone()}
	for _, fn := range c.observers {
		fn(event)
	}
}
