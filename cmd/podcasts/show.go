package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-podcasts/internal/catalog"
	"github.com/hazadus/go-podcasts/internal/logging/events"
	"github.com/hazadus/go-podcasts/internal/playback"
	"github.com/hazadus/go-podcasts/internal/view"
)

// showOptions содержит флаги команды show
type showOptions struct {
	clicks []int
	toggle bool
	width  int
}

// createShowCommand создает команду show с привязкой к экземпляру приложения
func (app *Application) createShowCommand() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show [category ID]",
		Short: "Render a category page",
		Long: `Render the page of a category once. Every --click presses the button
on the given podcast card in order, --toggle presses the now playing bar afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			categoryID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID категории: %s", args[0])
			}
			return app.showCategory(categoryID, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.clicks, "click", nil, "ID подкаста, на карточке которого нажать кнопку")
	cmd.Flags().BoolVar(&opts.toggle, "toggle", false, "нажать кнопку на панели текущего подкаста")
	cmd.Flags().IntVar(&opts.width, "width", view.DefaultWidth, "ширина вывода")

	return cmd
}

func (app *Application) showCategory(categoryID int, opts *showOptions) error {
	page, err := app.Manager().Page(categoryID)
	if errors.Is(err, catalog.ErrNotFound) {
		events.Catalog.NotFound(categoryID)
		fmt.Println(view.RenderNotFound(categoryID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка загрузки категории: %w", err)
	}
	events.Catalog.Open(categoryID, len(page.Podcasts))

	// Один запуск команды соответствует одному посещению страницы
	container := playback.NewContainer(
		playback.WithPolicy(app.Config.Policy()),
		playback.WithObserver(events.Playback.Observe),
	)
	defer container.Close()

	for _, podcastID := range opts.clicks {
		podcast, ok := page.FindPodcast(podcastID)
		if !ok {
			return fmt.Errorf("подкаст с ID %d не найден в категории %d", podcastID, categoryID)
		}
		if err := container.PlayPause(podcast); err != nil {
			return err
		}
	}

	if opts.toggle {
		if err := container.TogglePlaying(); err != nil {
			return err
		}
	}

	state, err := container.State()
	if err != nil {
		return err
	}

	fmt.Println(view.Render(page, state, view.Options{Width: opts.width, Cursor: -1}))
	return nil
}
