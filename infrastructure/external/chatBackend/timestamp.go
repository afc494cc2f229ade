package chatBackend

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// http.TimeFormat の GMT はリテラルのため UTC として解釈される
var zonedLayouts = []string{
	time.RFC3339Nano,
	http.TimeFormat,
	time.RFC1123Z,
	time.RFC1123,
}

// ゾーンを持たない表現はローカル時刻として解釈する
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// apiTimestamp は文字列の日時とエポックミリ秒の両方を受け付けます。
// 解釈できない値はゼロ値になり、取得全体は失敗させません。
type apiTimestamp struct {
	time.Time
}

func (t *apiTimestamp) UnmarshalJSON(data []byte) error {
	t.Time = parseTimestamp(data)
	return nil
}

func parseTimestamp(raw []byte) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		text = strings.TrimSpace(text)
		for _, layout := range zonedLayouts {
			if v, err := time.Parse(layout, text); err == nil {
				return v
			}
		}
		for _, layout := range localLayouts {
			if v, err := time.ParseInLocation(layout, text, time.Local); err == nil {
				return v
			}
		}
		zap.L().Warn("unrecognized history timestamp", zap.String("timestamp", text))
		return time.Time{}
	}

	var millis float64
	if err := json.Unmarshal(raw, &millis); err == nil {
		return time.UnixMilli(int64(millis))
	}

	zap.L().Warn("unrecognized history timestamp", zap.ByteString("timestamp", raw))
	return time.Time{}
}
