package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/gemini-chat/domain/repository/config"
	"gopkg.in/yaml.v3"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

type ConfigRepository struct{}

func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

// Read は設定ファイルを読み込みます。記載の無い項目はデフォルト値になります。
func (r *ConfigRepository) Read(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "failed to read config")
	}

	cfg := config.NewDefaultConfig()
	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse config")
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (r *ConfigRepository) Write(path string, cfg *config.Config) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return eris.Wrap(err, "failed to marshal config")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return eris.Wrap(err, "failed to create config directory")
	}

	return os.WriteFile(path, content, 0644)
}

func validateConfig(cfg *config.Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return eris.Wrap(err, "failed to validate config")
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed on the '%s' tag", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return eris.Errorf("invalid config: %s", strings.Join(messages, "; "))
}
