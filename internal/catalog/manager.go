// Package catalog предоставляет доступ только для чтения к каталогу подкастов
package catalog

import (
	"errors"
	"fmt"

	"github.com/hazadus/go-podcasts/internal/data"
)

// ErrNotFound возвращается, если категории или записи каталога для нее нет
var ErrNotFound = errors.New("не найдено")

// Provider описывает источник категорий и подкастов
type Provider interface {
	Categories() []data.Category
	Category(id int) (data.Category, error)
	Podcasts(categoryID int) ([]data.PodcastSummary, error)
}

// Page содержит все, что нужно для отрисовки страницы категории
type Page struct {
	Category data.Category
	Podcasts []data.PodcastSummary
}

// Manager реализует Provider поверх data.Catalog
type Manager struct {
	catalog *data.Catalog
}

// NewManager создает новый экземпляр Manager
func NewManager(catalog *data.Catalog) *Manager {
	return &Manager{
		catalog: catalog,
	}
}

// Categories возвращает список всех категорий
func (m *Manager) Categories() []data.Category {
	return m.catalog.Categories
}

// Category возвращает категорию по ID
func (m *Manager) Category(id int) (data.Category, error) {
	category, ok := m.catalog.CategoryByID(id)
	if !ok {
		return data.Category{}, fmt.Errorf("категория с ID %d: %w", id, ErrNotFound)
	}
	return *category, nil
}

// Podcasts возвращает подкасты категории в порядке каталога
func (m *Manager) Podcasts(categoryID int) ([]data.PodcastSummary, error) {
	podcasts, ok := m.catalog.PodcastsByCategory(categoryID)
	if !ok {
		return nil, fmt.Errorf("подкасты категории %d: %w", categoryID, ErrNotFound)
	}
	return podcasts, nil
}

// PodcastCount возвращает число подкастов категории и признак наличия записи в каталоге
func (m *Manager) PodcastCount(categoryID int) (int, bool) {
	podcasts, ok := m.catalog.PodcastsByCategory(categoryID)
	return len(podcasts), ok
}

// LoadPage собирает страницу категории через любой Provider.
// Отсутствие категории или записи каталога для нее дает ErrNotFound.
func LoadPage(p Provider, categoryID int) (Page, error) {
	category, err := p.Category(categoryID)
	if err != nil {
		return Page{}, err
	}

	podcasts, err := p.Podcasts(categoryID)
	if err != nil {
		return Page{}, err
	}

	return Page{Category: category, Podcasts: podcasts}, nil
}

// Page собирает страницу категории из каталога
func (m *Manager) Page(categoryID int) (Page, error) {
	return LoadPage(m, categoryID)
}

// FindPodcast ищет подкаст на странице по ID
func (p Page) FindPodcast(id int) (data.PodcastSummary, bool) {
	for _, podcast := range p.Podcasts {
		if podcast.ID == id {
			return podcast, true
		}
	}
	return data.PodcastSummary{}, false
}
