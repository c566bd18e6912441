package events

import "github.com/hazadus/go-podcasts/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Open(categoryID int, podcasts int) {
	logging.Trace("catalog.open", map[string]interface{}{
		"category_id": categoryID,
		"podcasts":    podcasts,
	})
}

func (CatalogTracer) NotFound(categoryID int) {
	logging.Trace("catalog.not_found", map[string]interface{}{"category_id": categoryID})
}

func (CatalogTracer) Import(categoryID int, podcastID int, source string) {
	logging.Trace("catalog.import", map[string]interface{}{
		"category_id": categoryID,
		"podcast_id":  podcastID,
		"source":      source,
	})
}
