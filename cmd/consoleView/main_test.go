package consoleView

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/gemini-chat/domain/model/history"
	"github.com/t-kuni/gemini-chat/domain/service/historyRender"
	"github.com/t-kuni/gemini-chat/testUtil"
)

func TestConsoleView(t *testing.T) {
	var out strings.Builder
	testee := NewConsoleView(&out, historyRender.NewHistoryRenderService(time.UTC))

	testee.ShowReply("hello")
	testee.ShowHistory([]history.Entry{
		{Message: "hi", Response: "hello", Timestamp: testUtil.NewTime("2024-01-01T00:00:00Z")},
	})

	assert.Equal(t, "Response:\nhello\n\nHistory:\nYou: hi\nGemini: hello\n2024-01-01 00:00:00\n\n", out.String())
}
