//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package chatBackend

import "github.com/t-kuni/gemini-chat/domain/model/history"

// Client は会話履歴を保持するバックエンドとの通信を抽象化するインターフェースです。
// トークンの有無や有効期限は検証せず、そのまま Bearer トークンとして送信します。
type Client interface {
	// FetchHistory は認証ユーザーの履歴をバックエンドが返した順序で取得します。
	FetchHistory(token string) ([]history.Entry, error)
	// SaveExchange はメッセージと応答の組を保存します。レスポンスボディは使用しません。
	SaveExchange(token string, exchange Exchange) error
}

// Exchange は保存対象のメッセージと応答の組です。
type Exchange struct {
	Message  string
	Response string
}
