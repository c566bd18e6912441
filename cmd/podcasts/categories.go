package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-podcasts/internal/utils"
)

// createCategoriesCommand создает команду categories с привязкой к экземпляру приложения
func (app *Application) createCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List all podcast categories",
		Long:  `Display a list of all categories with the number of podcasts in each.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listCategories()
		},
	}
}

func (app *Application) listCategories() {
	manager := app.Manager()
	categories := manager.Categories()
	if len(categories) == 0 {
		fmt.Println("📚 Каталог пуст.")
		return
	}

	fmt.Printf("📚 Найдено категорий: %d\n\n", len(categories))

	// Выводим заголовок таблицы
	fmt.Printf("%-4s %-30s %-10s\n", "ID", "Название", "Подкастов")
	fmt.Println(strings.Repeat("-", 50))

	for _, category := range categories {
		count := "—"
		if n, ok := manager.PodcastCount(category.ID); ok {
			count = fmt.Sprintf("%d", n)
		}

		fmt.Printf("%-4d %-30s %-10s\n",
			category.ID, utils.TruncateString(category.Name, 28), count)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'podcasts show [ID]' для просмотра категории")
}
