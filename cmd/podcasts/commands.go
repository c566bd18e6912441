package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podcasts",
		Short: "Browse podcast categories from the command line",
		Long:  `A simple command line tool to browse podcast categories, search the catalog and mark podcasts as playing.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.load()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", defaultConfigPath, "путь к файлу конфигурации")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createCategoriesCommand())
	rootCmd.AddCommand(app.createShowCommand())
	rootCmd.AddCommand(app.createSearchCommand())
	rootCmd.AddCommand(app.createImportCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
