// Package data содержит модель каталога подкастов и его загрузку из YAML файла
package data

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category описывает категорию подкастов
type Category struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Style string `yaml:"style"` // Цветовой тег оформления страницы категории
}

// PodcastSummary содержит данные для отображения одного подкаста (шоу, а не эпизода)
type PodcastSummary struct {
	ID    int    `yaml:"id"`
	Title string `yaml:"title"`
	Host  string `yaml:"host"`
	Image string `yaml:"image"` // Ссылка на обложку, сама картинка не загружается
}

// Catalog хранит упорядоченный список категорий и подкасты по ID категории
type Catalog struct {
	Categories []Category               `yaml:"categories"`
	Podcasts   map[int][]PodcastSummary `yaml:"podcasts"`
}

// NewCatalog создает пустой каталог
func NewCatalog() *Catalog {
	return &Catalog{
		Categories: make([]Category, 0),
		Podcasts:   make(map[int][]PodcastSummary),
	}
}

// DefaultCatalog возвращает встроенный каталог: шесть категорий, подкасты есть только у двух
func DefaultCatalog() *Catalog {
	return &Catalog{
		Categories: []Category{
			{ID: 1, Name: "News & Politics", Style: "red"},
			{ID: 2, Name: "Technology", Style: "blue"},
			{ID: 3, Name: "Business", Style: "green"},
			{ID: 4, Name: "Science", Style: "yellow"},
			{ID: 5, Name: "Arts", Style: "pink"},
			{ID: 6, Name: "Sports", Style: "purple"},
		},
		Podcasts: map[int][]PodcastSummary{
			1: {
				{ID: 101, Title: "Global News Roundup", Host: "Sarah Johnson", Image: "/placeholder.svg"},
				{ID: 102, Title: "Political Discourse", Host: "Michael Brown", Image: "/placeholder.svg"},
				{ID: 103, Title: "Current Affairs Analysis", Host: "Emma Thompson", Image: "/placeholder.svg"},
			},
			2: {
				{ID: 201, Title: "Tech Talk", Host: "Alex Chen", Image: "/placeholder.svg"},
				{ID: 202, Title: "Future Gadgets", Host: "Lila Patel", Image: "/placeholder.svg"},
				{ID: 203, Title: "Coding Chronicles", Host: "David Kim", Image: "/placeholder.svg"},
			},
		},
	}
}

// LoadData загружает каталог из файла.
// Если файл отсутствует или пуст, используется встроенный каталог.
func (c *Catalog) LoadData(filePath string) error {
	path, err := ExpandHome(filePath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			*c = *DefaultCatalog()
			return nil
		}
		return fmt.Errorf("ошибка чтения файла каталога: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		*c = *DefaultCatalog()
		return nil
	}

	loaded := NewCatalog()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("ошибка разбора каталога: %w", err)
	}
	if loaded.Podcasts == nil {
		loaded.Podcasts = make(map[int][]PodcastSummary)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	*c = *loaded
	return nil
}

// SaveData сохраняет каталог в файл
func (c *Catalog) SaveData(filePath string) error {
	path, err := ExpandHome(filePath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("ошибка сериализации каталога: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла каталога: %w", err)
	}
	return nil
}

// Validate проверяет уникальность ID категорий и подкастов внутри категории
func (c *Catalog) Validate() error {
	seen := make(map[int]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if seen[cat.ID] {
			return fmt.Errorf("повторяющийся ID категории: %d", cat.ID)
		}
		seen[cat.ID] = true
	}

	for categoryID, podcasts := range c.Podcasts {
		ids := make(map[int]bool, len(podcasts))
		for _, p := range podcasts {
			if ids[p.ID] {
				return fmt.Errorf("повторяющийся ID подкаста %d в категории %d", p.ID, categoryID)
			}
			ids[p.ID] = true
		}
	}
	return nil
}

// CategoryByID возвращает категорию по ID
func (c *Catalog) CategoryByID(id int) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// PodcastsByCategory возвращает подкасты категории.
// Второе значение false означает, что для категории нет записи в каталоге.
func (c *Catalog) PodcastsByCategory(categoryID int) ([]PodcastSummary, bool) {
	podcasts, ok := c.Podcasts[categoryID]
	return podcasts, ok
}

// AddPodcast добавляет подкаст в категорию и присваивает ему новый ID
func (c *Catalog) AddPodcast(categoryID int, podcast PodcastSummary) (PodcastSummary, error) {
	if _, ok := c.CategoryByID(categoryID); !ok {
		return PodcastSummary{}, fmt.Errorf("категории с ID %d не найдено", categoryID)
	}
	if c.Podcasts == nil {
		c.Podcasts = make(map[int][]PodcastSummary)
	}

	// Найдем максимальный ID в категории, для пустой категории начинаем с categoryID*100+1
	existing := c.Podcasts[categoryID]
	if len(existing) > 0 {
		maxID := existing[0].ID
		for _, p := range existing {
			if p.ID > maxID {
				maxID = p.ID
			}
		}
		podcast.ID = maxID + 1
	} else {
		podcast.ID = categoryID*100 + 1
	}

	c.Podcasts[categoryID] = append(existing, podcast)
	return podcast, nil
}

// ExpandHome раскрывает тильду в начале пути
func ExpandHome(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(filePath, "~", home, 1), nil
}
