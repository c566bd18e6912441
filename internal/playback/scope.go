package playback

import (
	"context"
	"errors"
	"fmt"
)

// ScopeError возвращается при обращении к контейнеру вне страницы, которой он принадлежит
type ScopeError struct {
	Op string
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("playback: %s вызван вне области страницы", e.Op)
}

// IsScopeError сообщает, является ли ошибка ошибкой области видимости
func IsScopeError(err error) bool {
	var scopeErr *ScopeError
	return errors.As(err, &scopeErr)
}

type containerKey struct{}

// NewContext возвращает контекст, в котором доступен контейнер
func NewContext(ctx context.Context, c *Container) context.Context {
	return context.WithValue(ctx, containerKey{}, c)
}

// FromContext достает контейнер из контекста.
// Если контейнера нет или он уже закрыт, возвращается *ScopeError.
func FromContext(ctx context.Context) (*Container, error) {
	c, _ := ctx.Value(containerKey{}).(*Container)
	if c.Closed() {
		return nil, &ScopeError{Op: "FromContext"}
	}
	return c, nil
}
