package history

import "time"

// Entry は記録済みのメッセージと応答の1往復を表します。
// 並び順はバックエンドが返した順序をそのまま保持します。
type Entry struct {
	Message   string
	Response  string
	Timestamp time.Time
}
