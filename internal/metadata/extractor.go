// Package metadata извлекает данные подкаста из тегов аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/hazadus/go-podcasts/internal/data"
)

const (
	// DefaultImage используется, если в файле нет встроенной обложки
	DefaultImage = "/placeholder.svg"
	// UnknownHost подставляется, если ведущего не удалось определить
	UnknownHost = "Unknown Host"
)

// Extractor извлекает данные подкаста из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает данные подкаста из io.ReadSeeker.
// Название шоу берется из альбома, ведущий - из исполнителя.
// Если тегов нет, данные разбираются из имени файла.
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) data.PodcastSummary {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultSummary(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultSummary(source)
	}

	fallback := e.getDefaultSummary(source)
	summary := data.PodcastSummary{
		Title: firstNonEmpty(metadata.Album(), metadata.Title(), fallback.Title),
		Host:  firstNonEmpty(metadata.Artist(), metadata.AlbumArtist(), fallback.Host),
		Image: DefaultImage,
	}

	// Встроенную обложку не декодируем, сохраняем только ссылку на файл
	if picture := metadata.Picture(); picture != nil && len(picture.Data) > 0 {
		summary.Image = "embedded:" + filepath.Base(source)
	}

	return summary
}

// ExtractFromFile извлекает данные подкаста из файла
func (e *Extractor) ExtractFromFile(filePath string) (data.PodcastSummary, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return data.PodcastSummary{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return data.PodcastSummary{}, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}
	if info.IsDir() {
		return data.PodcastSummary{}, fmt.Errorf("%s является директорией", filePath)
	}

	return e.ExtractFromReader(file, filePath), nil
}

// getDefaultSummary возвращает данные по умолчанию на основе имени файла
func (e *Extractor) getDefaultSummary(source string) data.PodcastSummary {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Host - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return data.PodcastSummary{
			Title: strings.TrimSpace(strings.Join(parts[1:], " - ")),
			Host:  strings.TrimSpace(parts[0]),
			Image: DefaultImage,
		}
	}

	// Если не удалось разобрать, используем имя файла как название
	return data.PodcastSummary{
		Title: nameWithoutExt,
		Host:  UnknownHost,
		Image: DefaultImage,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
