package gemini

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/gemini-chat/domain/external/gemini"
	"github.com/t-kuni/gemini-chat/domain/model/sampling"
)

func TestGeminiClient_GenerateContent(t *testing.T) {
	t.Run("リクエストが仕様通りの形式で送信され、応答が変換されること", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			assert.Empty(t, r.URL.RawQuery)

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, `{
				"contents": [{"role": "user", "parts": [{"text": "hi"}]}],
				"generationConfig": {"temperature": 0.7, "topP": 0.9, "topK": 40}
			}`, string(body))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"candidates": [
					{"content": {"role": "model", "parts": [{"text": "hello"}]}, "finishReason": "STOP"}
				]
			}`))
		}))
		defer server.Close()

		testee := NewGeminiClientWithBaseURL(server.URL, "test-key")
		resp, err := testee.GenerateContent("gemini-2.0-flash", gemini.NewUserRequest("hi", sampling.NewDefaultConfig()))
		assert.NoError(t, err)

		text, err := resp.FirstText()
		assert.NoError(t, err)
		assert.Equal(t, "hello", text)
		assert.Equal(t, "STOP", resp.Candidates[0].FinishReason)
	})

	t.Run("ステータスコード200以外の場合はレスポンスボディを含むエラーが返ること", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
		}))
		defer server.Close()

		testee := NewGeminiClientWithBaseURL(server.URL, "bad-key")
		_, err := testee.GenerateContent("gemini-2.0-flash", gemini.NewUserRequest("hi", sampling.NewDefaultConfig()))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "400")
		assert.Contains(t, err.Error(), "API key not valid")
	})

	t.Run("APIキーが無い場合はリクエストせずにエラーが返ること", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		testee := NewGeminiClientWithBaseURL(server.URL, "")
		_, err := testee.GenerateContent("gemini-2.0-flash", gemini.NewUserRequest("hi", sampling.NewDefaultConfig()))
		assert.True(t, errors.Is(err, ErrMissingAPIKey))
		assert.False(t, called)
	})
}

func TestGeminiClient_GenerateContent_ConnectionError(t *testing.T) {
	t.Run("接続に失敗した場合のエラーにAPIキーが含まれないこと", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		closedURL := server.URL
		server.Close()

		testee := NewGeminiClientWithBaseURL(closedURL, "SUPER-SECRET-KEY")
		_, err := testee.GenerateContent("gemini-2.0-flash", gemini.NewUserRequest("hi", sampling.NewDefaultConfig()))
		assert.Error(t, err)
		assert.NotContains(t, err.Error(), "SUPER-SECRET-KEY")
		assert.NotContains(t, fmt.Sprintf("%+v", err), "SUPER-SECRET-KEY")
	})
}

func TestGeminiClient_GenerateContent_Integration(t *testing.T) {
	t.Skip()

	_, currentFile, _, _ := runtime.Caller(0)
	currentDir := filepath.Dir(currentFile)
	envPath := filepath.Join(currentDir, "..", "..", "..", ".env")
	err := godotenv.Load(envPath)
	assert.NoError(t, err)

	// APIキーが設定されていることを確認
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Fatal("GEMINI_API_KEY is not set")
	}

	client := NewGeminiClient()
	resp, err := client.GenerateContent(string(gemini.DefaultModel), gemini.NewUserRequest("こんにちは", sampling.NewDefaultConfig()))
	assert.NoError(t, err)

	text, err := resp.FirstText()
	assert.NoError(t, err)
	assert.NotEmpty(t, text)
}
