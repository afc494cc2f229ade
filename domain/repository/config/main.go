package config

import (
	"github.com/t-kuni/gemini-chat/domain/external/gemini"
	"github.com/t-kuni/gemini-chat/domain/model/sampling"
)

type Config struct {
	Model    string          `yaml:"model" validate:"required"`
	Sampling sampling.Config `yaml:"sampling"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Model:    string(gemini.DefaultModel),
		Sampling: sampling.NewDefaultConfig(),
	}
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}
