package chatBackend

import (
	"encoding/json"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	domainChatBackend "github.com/t-kuni/gemini-chat/domain/external/chatBackend"
	"github.com/t-kuni/gemini-chat/domain/model/history"
	"github.com/t-kuni/gemini-chat/domain/system/requestId"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:5000"
	historyPath    = "/chat/history"
	savePath       = "/chat/save"
)

type ChatBackendClient struct {
	httpClient         *resty.Client
	requestIdGenerator requestId.Generator
}

type apiEntry struct {
	Message   string       `json:"message"`
	Response  string       `json:"response"`
	Timestamp apiTimestamp `json:"timestamp"`
}

type apiSaveRequest struct {
	Message  string `json:"message"`
	Response string `json:"response"`
}

// NewChatBackendClient は環境変数 CHAT_BACKEND_URL を接続先とするクライアントを作成します。
func NewChatBackendClient(requestIdGenerator requestId.Generator) *ChatBackendClient {
	baseURL := os.Getenv("CHAT_BACKEND_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return NewChatBackendClientWithBaseURL(baseURL, requestIdGenerator)
}

func NewChatBackendClientWithBaseURL(baseURL string, requestIdGenerator requestId.Generator) *ChatBackendClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &ChatBackendClient{
		httpClient:         client,
		requestIdGenerator: requestIdGenerator,
	}
}

func (c *ChatBackendClient) FetchHistory(token string) ([]history.Entry, error) {
	var result []apiEntry
	resp, err := c.request(token).
		SetResult(&result).
		Get(historyPath)
	if err != nil {
		return nil, eris.Wrap(err, "failed to send or decode request")
	}

	if !resp.IsSuccess() {
		return nil, eris.Errorf("history request failed with status code %d and response: %s", resp.StatusCode(), resp.String())
	}

	entries := make([]history.Entry, len(result))
	for i, e := range result {
		entries[i] = history.Entry{
			Message:   e.Message,
			Response:  e.Response,
			Timestamp: e.Timestamp.Time,
		}
	}
	return entries, nil
}

func (c *ChatBackendClient) SaveExchange(token string, exchange domainChatBackend.Exchange) error {
	jsonBody, err := json.Marshal(apiSaveRequest{
		Message:  exchange.Message,
		Response: exchange.Response,
	})
	if err != nil {
		return eris.Wrap(err, "failed to marshal request body")
	}

	resp, err := c.request(token).
		SetBody(jsonBody).
		Post(savePath)
	if err != nil {
		return eris.Wrap(err, "failed to send request")
	}

	if !resp.IsSuccess() {
		return eris.Errorf("save request failed with status code %d and response: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// トークンが空でもそのまま Bearer ヘッダーに載せる
func (c *ChatBackendClient) request(token string) *resty.Request {
	id := c.requestIdGenerator.NewRequestId()
	zap.L().Debug("chat backend request", zap.String("requestId", id))

	return c.httpClient.R().
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("X-Request-Id", id)
}
