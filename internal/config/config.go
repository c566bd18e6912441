// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-podcasts/internal/data"
	"github.com/hazadus/go-podcasts/internal/playback"
)

const (
	DefaultCatalogFile = "~/.podcasts/catalog.yaml"
	DefaultLogFile     = "~/.podcasts/podcasts.log"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	CatalogFile  string `yaml:"catalog_file"`
	LogFile      string `yaml:"log_file"`
	Trace        bool   `yaml:"trace"`
	SelectPolicy string `yaml:"select_policy"` // reset или preserve
}

// Default возвращает конфигурацию по умолчанию с раскрытыми путями
func Default() (*Config, error) {
	config := &Config{}
	if err := config.applyDefaults(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := data.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default()
		}
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(content, config)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}
	return config, nil
}

// Policy возвращает политику выбора подкаста для контейнера воспроизведения
func (c *Config) Policy() playback.SelectPolicy {
	// Значение уже проверено при загрузке
	policy, _ := playback.ParseSelectPolicy(c.SelectPolicy)
	return policy
}

func (c *Config) applyDefaults() error {
	// Устанавливаем значения по умолчанию, если они не заданы
	if c.CatalogFile == "" {
		c.CatalogFile = DefaultCatalogFile
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}

	policy, err := playback.ParseSelectPolicy(c.SelectPolicy)
	if err != nil {
		return err
	}
	c.SelectPolicy = policy.String()

	// Раскрываем тильду в путях
	if c.CatalogFile, err = data.ExpandHome(c.CatalogFile); err != nil {
		return err
	}
	if c.LogFile, err = data.ExpandHome(c.LogFile); err != nil {
		return err
	}
	return nil
}
