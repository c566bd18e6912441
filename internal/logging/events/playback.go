package events

import (
	"github.com/hazadus/go-podcasts/internal/logging"
	"github.com/hazadus/go-podcasts/internal/playback"
)

type PlaybackTracer struct{}

var Playback = PlaybackTracer{}

// Observe подходит для playback.WithObserver и пишет каждое изменение состояния
func (PlaybackTracer) Observe(e playback.Event) {
	payload := map[string]interface{}{
		"view_id":    e.ViewID.String(),
		"phase":      e.State.Phase().String(),
		"is_playing": e.State.IsPlaying,
	}
	if e.State.Current != nil {
		payload["podcast_id"] = e.State.Current.ID
	}
	logging.Trace("playback."+string(e.Op), payload)
}
