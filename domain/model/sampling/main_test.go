package sampling

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestConfig_Clamp(t *testing.T) {
	t.Run("デフォルト値が0.7/0.9/40であること", func(t *testing.T) {
		cfg := NewDefaultConfig()
		assert.Equal(t, 0.7, cfg.Temperature)
		assert.Equal(t, 0.9, cfg.TopP)
		assert.Equal(t, 40, cfg.TopK)
	})

	t.Run("範囲内の値はそのまま維持されること", func(t *testing.T) {
		cfg := Config{Temperature: 0.25, TopP: 1, TopK: 1}.Clamp()
		assert.Equal(t, Config{Temperature: 0.25, TopP: 1, TopK: 1}, cfg)
	})

	t.Run("範囲外の値が丸められること", func(t *testing.T) {
		cfg := Config{Temperature: 1.5, TopP: -0.2, TopK: 500}.Clamp()
		assert.Equal(t, Config{Temperature: 1, TopP: 0, TopK: 100}, cfg)

		cfg = Config{Temperature: -1, TopP: 3, TopK: 0}.Clamp()
		assert.Equal(t, Config{Temperature: 0, TopP: 1, TopK: 1}, cfg)
	})
}
