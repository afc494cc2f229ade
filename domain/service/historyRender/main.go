package historyRender

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/gemini-chat/domain/model/history"
	"github.com/t-kuni/gemini-chat/domain/model/sampling"
)

const (
	TimestampLayout  = "2006-01-02 15:04:05"
	UnknownTimestamp = "unknown time"
)

//go:embed history.txt.tmpl
var historyTmpl string

//go:embed reply.txt.tmpl
var replyTmpl string

type HistoryRenderService struct {
	location *time.Location
	history  *template.Template
	reply    *template.Template
}

type historyParam struct {
	Entries []entryParam
}

type entryParam struct {
	Message   string
	Response  string
	Timestamp string
}

// NewHistoryRenderService はタイムスタンプを location の時刻で表示するレンダラーを作成します。
func NewHistoryRenderService(location *time.Location) *HistoryRenderService {
	return &HistoryRenderService{
		location: location,
		history:  template.Must(template.New("history").Parse(historyTmpl)),
		reply:    template.Must(template.New("reply").Parse(replyTmpl)),
	}
}

// RenderHistory は履歴を返却順に1件1ブロックで出力します。空の場合はその旨を出力します。
func (s *HistoryRenderService) RenderHistory(w io.Writer, entries []history.Entry) error {
	param := historyParam{Entries: make([]entryParam, len(entries))}
	for i, e := range entries {
		param.Entries[i] = entryParam{
			Message:   e.Message,
			Response:  e.Response,
			Timestamp: s.formatTimestamp(e.Timestamp),
		}
	}

	if err := s.history.Execute(w, param); err != nil {
		return eris.Wrap(err, "failed to render history")
	}
	return nil
}

func (s *HistoryRenderService) formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return UnknownTimestamp
	}
	return t.In(s.location).Format(TimestampLayout)
}

func (s *HistoryRenderService) RenderReply(w io.Writer, reply string) error {
	if err := s.reply.Execute(w, struct{ Reply string }{reply}); err != nil {
		return eris.Wrap(err, "failed to render reply")
	}
	return nil
}

func (s *HistoryRenderService) RenderSampling(w io.Writer, cfg sampling.Config) error {
	_, err := fmt.Fprintf(w, "Temperature: %.2f\nTop-p: %.2f\nTop-k: %d\n", cfg.Temperature, cfg.TopP, cfg.TopK)
	if err != nil {
		return eris.Wrap(err, "failed to render sampling config")
	}
	return nil
}
