//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package gemini

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/gemini-chat/domain/model/sampling"
)

// ErrNoCandidate は応答に候補テキストが含まれていなかったことを表します。
var ErrNoCandidate = eris.New("response has no candidate text")

// Client はGemini APIとの通信を抽象化するインターフェースです。
type Client interface {
	// GenerateContent はコンテンツ生成リクエストを送信し、応答を返します。
	// モデルのバリデーションは行いません。
	// ステータスコード200以外が返却された場合、レスポンスボディ全体をエラーメッセージに含めます。
	GenerateContent(model string, req GenerateRequest) (GenerateResponse, error)
}

// ModelName はGemini APIで使用可能なモデル名を定義する型です。
type ModelName string

const (
	ModelGemini20Flash     ModelName = "gemini-2.0-flash"
	ModelGemini20FlashLite ModelName = "gemini-2.0-flash-lite"
	ModelGemini15Pro       ModelName = "gemini-1.5-pro"

	DefaultModel = ModelGemini20Flash

	RoleUser  = "user"
	RoleModel = "model"
)

type Part struct {
	Text string
}

type Content struct {
	Role  string
	Parts []Part
}

type GenerateRequest struct {
	Contents         []Content
	GenerationConfig sampling.Config
}

type Candidate struct {
	Content      Content
	FinishReason string
}

type GenerateResponse struct {
	Candidates []Candidate
}

// NewUserRequest はユーザー発話1件からなるリクエストを作成します。
func NewUserRequest(text string, cfg sampling.Config) GenerateRequest {
	return GenerateRequest{
		Contents: []Content{
			{Role: RoleUser, Parts: []Part{{Text: text}}},
		},
		GenerationConfig: cfg,
	}
}

// FirstText は先頭候補の先頭パートのテキストを返します。
func (r GenerateResponse) FirstText() (string, error) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidate
	}
	return r.Candidates[0].Content.Parts[0].Text, nil
}
