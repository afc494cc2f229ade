//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package chatSession

import (
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/gemini-chat/domain/external/chatBackend"
	"github.com/t-kuni/gemini-chat/domain/external/gemini"
	"github.com/t-kuni/gemini-chat/domain/model/history"
	"github.com/t-kuni/gemini-chat/domain/model/sampling"
	"github.com/t-kuni/gemini-chat/domain/repository/token"
	"go.uber.org/zap"
)

var (
	ErrEmptyDraft = eris.New("draft input is empty")
	ErrLoggedOut  = eris.New("session is logged out")
)

// View はセッションの結果を利用者に反映する出力先です。
type View interface {
	ShowReply(reply string)
	ShowHistory(entries []history.Entry)
}

type Options struct {
	Model     string
	Sampling  sampling.Config
	TokenPath string
}

// State はセッションが保持する一時的な状態です。
type State struct {
	Draft     string
	LastReply string
	History   []history.Entry
	Sampling  sampling.Config
	Token     string
	LoggedOut bool
}

// ChatSessionService は生成・保存・履歴再取得の呼び出しを順に行い、結果を状態に反映します。
// 送信の多重実行は制御しません。状態の更新は後勝ちです。
type ChatSessionService struct {
	geminiClient    gemini.Client
	backendClient   chatBackend.Client
	tokenRepository token.Repository
	view            View
	model           string
	tokenPath       string

	mu    sync.Mutex
	state State
}

func NewChatSessionService(
	geminiClient gemini.Client,
	backendClient chatBackend.Client,
	tokenRepository token.Repository,
	view View,
	opts Options,
) *ChatSessionService {
	return &ChatSessionService{
		geminiClient:    geminiClient,
		backendClient:   backendClient,
		tokenRepository: tokenRepository,
		view:            view,
		model:           opts.Model,
		tokenPath:       opts.TokenPath,
		state: State{
			History:  []history.Entry{},
			Sampling: opts.Sampling.Clamp(),
		},
	}
}

// Open は保存済みのトークンを読み込みます。トークンが無くてもエラーにはしません。
func (s *ChatSessionService) Open() error {
	tok, err := s.tokenRepository.Read(s.tokenPath)
	if err != nil {
		return eris.Wrap(err, "failed to read token")
	}

	s.mu.Lock()
	s.state.Token = tok
	s.state.LoggedOut = false
	s.mu.Unlock()

	zap.L().Debug("session opened", zap.Bool("hasToken", tok != ""))
	return nil
}

// LoadHistory は履歴を取得し、成功した場合のみ保持している履歴を置き換えます。
func (s *ChatSessionService) LoadHistory() error {
	tok, err := s.authToken()
	if err != nil {
		return err
	}
	return s.refreshHistory(tok)
}

func (s *ChatSessionService) SetDraft(draft string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = draft
}

// Send は下書きを生成APIに送り、応答を表示してから保存と履歴の再取得を行います。
// いずれかの手順が失敗した時点で残りの手順は実行しません。
func (s *ChatSessionService) Send() error {
	s.mu.Lock()
	draft := s.state.Draft
	cfg := s.state.Sampling
	loggedOut := s.state.LoggedOut
	s.mu.Unlock()

	if loggedOut {
		return ErrLoggedOut
	}
	if strings.TrimSpace(draft) == "" {
		return ErrEmptyDraft
	}

	zap.L().Debug("generating reply",
		zap.String("model", s.model),
		zap.Float64("temperature", cfg.Temperature),
		zap.Float64("topP", cfg.TopP),
		zap.Int("topK", cfg.TopK),
	)

	resp, err := s.geminiClient.GenerateContent(s.model, gemini.NewUserRequest(draft, cfg))
	if err != nil {
		return eris.Wrap(err, "failed to generate content")
	}

	reply, err := resp.FirstText()
	if err != nil {
		return eris.Wrap(err, "failed to extract reply")
	}

	s.mu.Lock()
	s.state.LastReply = reply
	s.mu.Unlock()
	s.view.ShowReply(reply)

	tok, err := s.authToken()
	if err != nil {
		return err
	}

	err = s.backendClient.SaveExchange(tok, chatBackend.Exchange{Message: draft, Response: reply})
	if err != nil {
		return eris.Wrap(err, "failed to save exchange")
	}

	tok, err = s.authToken()
	if err != nil {
		return err
	}

	return s.refreshHistory(tok)
}

func (s *ChatSessionService) SetTemperature(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sampling.Temperature = v
	s.state.Sampling = s.state.Sampling.Clamp()
}

func (s *ChatSessionService) SetTopP(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sampling.TopP = v
	s.state.Sampling = s.state.Sampling.Clamp()
}

func (s *ChatSessionService) SetTopK(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sampling.TopK = v
	s.state.Sampling = s.state.Sampling.Clamp()
}

// Logout はトークンを破棄し、以降の認証付き呼び出しを行わない状態にします。
// 保存済みトークンの削除に失敗した場合もメモリ上のトークンは破棄されます。
func (s *ChatSessionService) Logout() error {
	s.mu.Lock()
	s.state.Token = ""
	s.state.LoggedOut = true
	s.mu.Unlock()

	if err := s.tokenRepository.Delete(s.tokenPath); err != nil {
		return eris.Wrap(err, "failed to delete token")
	}

	zap.L().Debug("session logged out")
	return nil
}

// Snapshot は現在の状態のコピーを返します。
func (s *ChatSessionService) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.History = append([]history.Entry{}, s.state.History...)
	return snapshot
}

func (s *ChatSessionService) authToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.LoggedOut {
		return "", ErrLoggedOut
	}
	return s.state.Token, nil
}

func (s *ChatSessionService) refreshHistory(tok string) error {
	entries, err := s.backendClient.FetchHistory(tok)
	if err != nil {
		return eris.Wrap(err, "failed to fetch history")
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	s.mu.Lock()
	s.state.History = entries
	s.mu.Unlock()

	s.view.ShowHistory(append([]history.Entry{}, entries...))
	return nil
}
