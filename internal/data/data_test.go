package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
)

func TestLoadDataMissingFileUsesDefault(t *testing.T) {
	catalog := NewCatalog()

	err := catalog.LoadData(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Ошибка загрузки каталога: %v", err)
	}

	if diff := deep.Equal(catalog, DefaultCatalog()); diff != nil {
		t.Errorf("Ожидался встроенный каталог: %v", diff)
	}
}

func TestLoadDataEmptyFileUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("\n"), 0644); err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}

	catalog := NewCatalog()
	if err := catalog.LoadData(path); err != nil {
		t.Fatalf("Ошибка загрузки каталога: %v", err)
	}

	if len(catalog.Categories) != 6 {
		t.Errorf("Ожидалось 6 категорий, получено %d", len(catalog.Categories))
	}
}

func TestSaveAndLoadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	original := DefaultCatalog()
	if _, err := original.AddPodcast(3, PodcastSummary{Title: "Market Watch", Host: "Nina Ross"}); err != nil {
		t.Fatalf("Ошибка добавления подкаста: %v", err)
	}

	if err := original.SaveData(path); err != nil {
		t.Fatalf("Ошибка сохранения каталога: %v", err)
	}

	loaded := NewCatalog()
	if err := loaded.LoadData(path); err != nil {
		t.Fatalf("Ошибка загрузки каталога: %v", err)
	}

	if diff := deep.Equal(loaded, original); diff != nil {
		t.Errorf("Каталог после загрузки отличается: %v", diff)
	}
}

func TestLoadDataInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("categories: [oops"), 0644); err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}

	catalog := NewCatalog()
	if err := catalog.LoadData(path); err == nil {
		t.Error("Ожидалась ошибка разбора каталога")
	}
}

func TestLoadDataDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `categories:
  - id: 1
    name: One
  - id: 1
    name: Again
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}

	catalog := NewCatalog()
	if err := catalog.LoadData(path); err == nil {
		t.Error("Ожидалась ошибка из-за повторяющегося ID категории")
	}
}

func TestCategoryByID(t *testing.T) {
	catalog := DefaultCatalog()

	category, ok := catalog.CategoryByID(2)
	if !ok {
		t.Fatal("Категория 2 должна существовать")
	}
	if category.Name != "Technology" {
		t.Errorf("Ожидалось имя Technology, получено %s", category.Name)
	}

	if _, ok := catalog.CategoryByID(42); ok {
		t.Error("Категории 42 не должно существовать")
	}
}

func TestPodcastsByCategory(t *testing.T) {
	catalog := DefaultCatalog()

	podcasts, ok := catalog.PodcastsByCategory(1)
	if !ok {
		t.Fatal("Для категории 1 должна быть запись в каталоге")
	}
	if len(podcasts) != 3 || podcasts[0].ID != 101 {
		t.Errorf("Неожиданные подкасты категории 1: %+v", podcasts)
	}

	// У категории 4 нет записи в каталоге
	if _, ok := catalog.PodcastsByCategory(4); ok {
		t.Error("Для категории 4 не должно быть записи в каталоге")
	}
}

func TestAddPodcastAssignsIDs(t *testing.T) {
	catalog := DefaultCatalog()

	added, err := catalog.AddPodcast(2, PodcastSummary{Title: "Open Source Hour", Host: "Ivan Petrov"})
	if err != nil {
		t.Fatalf("Ошибка добавления подкаста: %v", err)
	}
	if added.ID != 204 {
		t.Errorf("Ожидался ID 204, получено %d", added.ID)
	}

	added, err = catalog.AddPodcast(5, PodcastSummary{Title: "Gallery Walk", Host: "Mia Wong"})
	if err != nil {
		t.Fatalf("Ошибка добавления подкаста: %v", err)
	}
	if added.ID != 501 {
		t.Errorf("Ожидался ID 501 для пустой категории, получено %d", added.ID)
	}

	if _, err := catalog.AddPodcast(99, PodcastSummary{Title: "Nowhere"}); err == nil {
		t.Error("Ожидалась ошибка для несуществующей категории")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Домашняя директория недоступна: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/catalog.yaml", filepath.Join(home, "catalog.yaml")},
		{"/tmp/~catalog.yaml", "/tmp/~catalog.yaml"},
		{"relative/path~", "relative/path~"},
		{"", ""},
	}

	for _, test := range tests {
		result, err := ExpandHome(test.input)
		if err != nil {
			t.Fatalf("ExpandHome(%q) вернул ошибку: %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("ExpandHome(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}
