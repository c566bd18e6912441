package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-podcasts/internal/utils"
)

// createSearchCommand создает команду search с привязкой к экземпляру приложения
func (app *Application) createSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search podcasts by title or host",
		Long:  `Fuzzy search over podcast titles and hosts across all categories.`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			app.searchPodcasts(strings.Join(args, " "))
		},
	}
}

func (app *Application) searchPodcasts(query string) {
	matches := app.Manager().Search(query)
	if len(matches) == 0 {
		fmt.Printf("🔍 Ничего не найдено по запросу '%s'\n", query)
		return
	}

	fmt.Printf("🔍 Найдено подкастов: %d\n\n", len(matches))

	fmt.Printf("%-4s %-30s %-24s %-20s\n", "ID", "Название", "Ведущий", "Категория")
	fmt.Println(strings.Repeat("-", 80))

	for _, match := range matches {
		fmt.Printf("%-4d %-30s %-24s %-20s\n",
			match.Podcast.ID,
			utils.TruncateString(match.Podcast.Title, 28),
			utils.TruncateString(match.Podcast.Host, 22),
			utils.TruncateString(match.Category.Name, 18))
	}
}
