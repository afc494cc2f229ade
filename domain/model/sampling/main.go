package sampling

const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
	DefaultTopK        = 40

	MinTopK = 1
	MaxTopK = 100
)

// Config は生成時のランダム性と候補の幅を制御するパラメータです。
// 値は生成リクエストにそのまま送信されます。
type Config struct {
	Temperature float64 `yaml:"temperature" validate:"gte=0,lte=1"`
	TopP        float64 `yaml:"top-p" validate:"gte=0,lte=1"`
	TopK        int     `yaml:"top-k" validate:"gte=1,lte=100"`
}

func NewDefaultConfig() Config {
	return Config{
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		TopK:        DefaultTopK,
	}
}

// Clamp は各パラメータを入力可能な範囲に丸めた Config を返します。
func (c Config) Clamp() Config {
	return Config{
		Temperature: clampFloat(c.Temperature, 0, 1),
		TopP:        clampFloat(c.TopP, 0, 1),
		TopK:        clampInt(c.TopK, MinTopK, MaxTopK),
	}
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
