package consoleView

import (
	"fmt"
	"io"

	"github.com/t-kuni/gemini-chat/domain/model/history"
	"github.com/t-kuni/gemini-chat/domain/service/historyRender"
	"go.uber.org/zap"
)

// ConsoleView はセッションの応答と履歴を端末に表示します。
type ConsoleView struct {
	out                  io.Writer
	historyRenderService *historyRender.HistoryRenderService
}

func NewConsoleView(out io.Writer, historyRenderService *historyRender.HistoryRenderService) *ConsoleView {
	return &ConsoleView{
		out:                  out,
		historyRenderService: historyRenderService,
	}
}

func (v *ConsoleView) ShowReply(reply string) {
	if err := v.historyRenderService.RenderReply(v.out, reply); err != nil {
		zap.L().Error("failed to show reply", zap.Error(err))
		return
	}
	fmt.Fprintln(v.out)
}

func (v *ConsoleView) ShowHistory(entries []history.Entry) {
	if err := v.historyRenderService.RenderHistory(v.out, entries); err != nil {
		zap.L().Error("failed to show history", zap.Error(err))
	}
}
