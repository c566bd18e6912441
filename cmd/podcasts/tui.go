package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-podcasts/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [category ID]",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing categories. The optional category ID opens its page right away.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			categoryID := 0
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("неверный ID категории: %s", args[0])
				}
				categoryID = id
			}
			return app.launchTUI(categoryID)
		},
	}
}

func (app *Application) launchTUI(categoryID int) error {
	// Создаем экземпляр TUI приложения
	tuiApp := tui.NewApp(app.Manager(), app.Config.Policy())

	// Запускаем TUI
	if err := tuiApp.Run(categoryID); err != nil {
		return fmt.Errorf("ошибка работы TUI: %w", err)
	}
	return nil
}
