package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/hazadus/go-podcasts/internal/data"
)

// Match содержит найденный подкаст вместе с его категорией
type Match struct {
	Category data.Category
	Podcast  data.PodcastSummary
	Distance int

	order int
}

// Search ищет подкасты по названию и ведущему нечетким сравнением без учета регистра.
// Результаты упорядочены по близости, при равенстве - по порядку каталога.
func (m *Manager) Search(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var targets []string
	var candidates []Match
	for _, category := range m.catalog.Categories {
		podcasts, _ := m.catalog.PodcastsByCategory(category.ID)
		for _, podcast := range podcasts {
			targets = append(targets, podcast.Title+" "+podcast.Host)
			candidates = append(candidates, Match{Category: category, Podcast: podcast, order: len(candidates)})
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	matches := make([]Match, 0, len(ranks))
	for _, rank := range ranks {
		match := candidates[rank.OriginalIndex]
		match.Distance = rank.Distance
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].order < matches[j].order
	})
	return matches
}
