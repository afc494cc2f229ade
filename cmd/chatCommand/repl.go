package chatCommand

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/gemini-chat/domain/service/chatSession"
	"github.com/t-kuni/gemini-chat/domain/service/historyRender"
	"go.uber.org/zap"
)

const maxLineSize = 1024 * 1024

const helpText = `Commands:
  /temperature <0-1>  set temperature for the next message
  /top-p <0-1>        set top-p for the next message
  /top-k <1-100>      set top-k for the next message
  /config             show model and sampling parameters
  /history            show the loaded history
  /reload             fetch the history again
  /reply              show the last reply
  /logout             forget the token and leave the session
  /help               show this help
  /exit               leave the session
`

// Repl は1行ずつ入力を読み、送信またはコマンドとして処理します。
type Repl struct {
	session              *chatSession.ChatSessionService
	historyRenderService *historyRender.HistoryRenderService
	model                string
	in                   io.Reader
	out                  io.Writer
}

func NewRepl(
	session *chatSession.ChatSessionService,
	historyRenderService *historyRender.HistoryRenderService,
	model string,
	in io.Reader,
	out io.Writer,
) *Repl {
	return &Repl{
		session:              session,
		historyRenderService: historyRenderService,
		model:                model,
		in:                   in,
		out:                  out,
	}
}

// Run は入力が終わるか /exit, /logout が入力されるまで繰り返します。
// 送信の失敗はログに出力して次の入力を待ちます。
func (r *Repl) Run() error {
	fmt.Fprintf(r.out, "Chatting with %s. Type /help for commands.\n", r.model)

	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if r.handleCommand(line) {
				return nil
			}
			continue
		}

		r.session.SetDraft(line)
		if err := r.session.Send(); err != nil {
			zap.L().Error("failed to send message", zap.Error(err))
		}
	}

	if err := scanner.Err(); err != nil {
		return eris.Wrap(err, "failed to read input")
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *Repl) handleCommand(line string) bool {
	fields := strings.Fields(line)
	name := strings.TrimPrefix(fields[0], "/")
	arg := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch name {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprint(r.out, helpText)
	case "temperature", "temp":
		v, ok := r.parseFloat(name, arg)
		if ok {
			r.session.SetTemperature(v)
			r.showSampling()
		}
	case "top-p":
		v, ok := r.parseFloat(name, arg)
		if ok {
			r.session.SetTopP(v)
			r.showSampling()
		}
	case "top-k":
		v, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(r.out, "invalid value for %s: %q\n", name, arg)
			return false
		}
		r.session.SetTopK(v)
		r.showSampling()
	case "config":
		fmt.Fprintf(r.out, "Model: %s\n", r.model)
		r.showSampling()
	case "history":
		r.render(r.historyRenderService.RenderHistory(r.out, r.session.Snapshot().History))
	case "reload":
		if err := r.session.LoadHistory(); err != nil {
			zap.L().Error("failed to load history", zap.Error(err))
		}
	case "reply":
		r.render(r.historyRenderService.RenderReply(r.out, r.session.Snapshot().LastReply))
	case "logout":
		if err := r.session.Logout(); err != nil {
			zap.L().Error("failed to delete token", zap.Error(err))
		}
		fmt.Fprintln(r.out, "Logged out. Run `gemini-chat login` to sign in again.")
		return true
	default:
		fmt.Fprintln(r.out, "unknown command, type /help")
	}
	return false
}

func (r *Repl) parseFloat(name string, arg string) (float64, bool) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		fmt.Fprintf(r.out, "invalid value for %s: %q\n", name, arg)
		return 0, false
	}
	return v, true
}

func (r *Repl) showSampling() {
	r.render(r.historyRenderService.RenderSampling(r.out, r.session.Snapshot().Sampling))
}

func (r *Repl) render(err error) {
	if err != nil {
		zap.L().Error("failed to render", zap.Error(err))
	}
}
