// Package events содержит типизированные обертки над logging.Trace
package events

import "github.com/hazadus/go-podcasts/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Screen(name string) {
	logging.Trace("app.screen", map[string]interface{}{"screen": name})
}
