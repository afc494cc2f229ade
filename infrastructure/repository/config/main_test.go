package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/gemini-chat/domain/repository/config"
	"github.com/t-kuni/gemini-chat/domain/model/sampling"
	"github.com/t-kuni/gemini-chat/testUtil"
)

func TestConfigRepository_Read(t *testing.T) {
	t.Run("設定ファイルが読み込まれること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("gemini-chat.yml", []byte(`
model: gemini-1.5-pro
sampling:
  temperature: 0.2
  top-p: 0.5
  top-k: 10
`))

		cfg, err := NewConfigRepository().Read("gemini-chat.yml")
		assert.NoError(t, err)
		assert.Equal(t, &config.Config{
			Model:    "gemini-1.5-pro",
			Sampling: sampling.Config{Temperature: 0.2, TopP: 0.5, TopK: 10},
		}, cfg)
	})

	t.Run("記載の無い項目はデフォルト値になること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("gemini-chat.yml", []byte(`
sampling:
  top-k: 5
`))

		cfg, err := NewConfigRepository().Read("gemini-chat.yml")
		assert.NoError(t, err)
		assert.Equal(t, "gemini-2.0-flash", cfg.Model)
		assert.Equal(t, sampling.Config{Temperature: 0.7, TopP: 0.9, TopK: 5}, cfg.Sampling)
	})

	t.Run("範囲外の値はエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("gemini-chat.yml", []byte(`
sampling:
  temperature: 1.5
  top-k: 0
`))

		_, err := NewConfigRepository().Read("gemini-chat.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Temperature")
		assert.Contains(t, err.Error(), "TopK")
	})

	t.Run("モデル名が空の場合はエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("gemini-chat.yml", []byte(`model: ""`))

		_, err := NewConfigRepository().Read("gemini-chat.yml")
		assert.Error(t, err)
	})
}

func TestConfigRepository_Write(t *testing.T) {
	space := testUtil.BeginTestSpace(t)
	defer space.CleanUp()

	err := NewConfigRepository().Write("sub/gemini-chat.yml", config.NewDefaultConfig())
	assert.NoError(t, err)

	space.AssertFile("sub/gemini-chat.yml", func(actual []byte) {
		expect := `
model: gemini-2.0-flash
sampling:
    temperature: 0.7
    top-p: 0.9
    top-k: 40
`
		assert.YAMLEq(t, expect, string(actual))
	})
}
