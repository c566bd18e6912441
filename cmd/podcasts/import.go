package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-podcasts/internal/data"
	"github.com/hazadus/go-podcasts/internal/logging/events"
	"github.com/hazadus/go-podcasts/internal/metadata"
)

// createImportCommand создает команду import с привязкой к экземпляру приложения
func (app *Application) createImportCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "import [category ID] [file path]...",
		Short: "Add podcasts to a category from local audio files",
		Long:  `Read audio tags of local files and add a podcast card for each file to the category.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			categoryID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID категории: %s", args[0])
			}
			return app.importPodcasts(ctx, categoryID, args[1:])
		},
	}
}

// importPodcasts добавляет подкасты из файлов и сохраняет каталог
func (app *Application) importPodcasts(ctx context.Context, categoryID int, files []string) error {
	if _, err := app.Manager().Category(categoryID); err != nil {
		return fmt.Errorf("ошибка импорта: %w", err)
	}

	extractor := metadata.NewExtractor()

	// Сначала читаем все файлы, каталог меняется только если все прочитаны
	summaries := make([]data.PodcastSummary, 0, len(files))
	for _, filePath := range files {
		// Проверяем, не была ли операция отменена
		if ctx.Err() != nil {
			return fmt.Errorf("операция отменена: %w", ctx.Err())
		}

		summary, err := extractor.ExtractFromFile(filePath)
		if err != nil {
			return fmt.Errorf("ошибка чтения метаданных %s: %w", filePath, err)
		}
		summaries = append(summaries, summary)
	}

	for i, summary := range summaries {
		added, err := app.Catalog.AddPodcast(categoryID, summary)
		if err != nil {
			return fmt.Errorf("ошибка добавления подкаста: %w", err)
		}
		events.Catalog.Import(categoryID, added.ID, files[i])

		fmt.Printf("✅ Добавлен подкаст %d: %s (%s)\n", added.ID, added.Title, added.Host)
	}

	// Сохраняем данные
	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	fmt.Printf("\n📦 Каталог сохранен в %s\n", app.Config.CatalogFile)
	return nil
}
