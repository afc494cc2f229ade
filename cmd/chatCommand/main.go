package chatCommand

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/gemini-chat/cmd/consoleView"
	"github.com/t-kuni/gemini-chat/domain/external/chatBackend"
	"github.com/t-kuni/gemini-chat/domain/external/gemini"
	"github.com/t-kuni/gemini-chat/domain/model/history"
	"github.com/t-kuni/gemini-chat/domain/repository/token"
	"github.com/t-kuni/gemini-chat/domain/service/chatSession"
	"github.com/t-kuni/gemini-chat/domain/service/historyRender"
	"github.com/t-kuni/gemini-chat/domain/service/workspaceResolve"
	"go.uber.org/zap"
)

type ChatCommand struct {
	CobraCommand *cobra.Command
}

func NewChatCommand(
	geminiClient gemini.Client,
	backendClient chatBackend.Client,
	tokenRepository token.Repository,
	workspaceResolveService *workspaceResolve.WorkspaceResolveService,
	historyRenderService *historyRender.HistoryRenderService,
) *ChatCommand {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session with Gemini",
		Long: `Start an interactive chat session. The saved history is loaded first,
then every line you type is sent to Gemini, saved to the history backend
and the refreshed history is shown. Lines starting with "/" are commands;
type /help to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspaceResolveService.Resolve()
			if err != nil {
				return eris.Wrap(err, "failed to resolve workspace")
			}

			out := cmd.OutOrStdout()
			session := chatSession.NewChatSessionService(
				geminiClient,
				backendClient,
				tokenRepository,
				consoleView.NewConsoleView(out, historyRenderService),
				chatSession.Options{
					Model:     ws.Config.Model,
					Sampling:  ws.Config.Sampling,
					TokenPath: ws.TokenPath(),
				},
			)

			if err := session.Open(); err != nil {
				return eris.Wrap(err, "failed to open session")
			}

			if err := session.LoadHistory(); err != nil {
				zap.L().Error("failed to load history", zap.Error(err))
				if err := historyRenderService.RenderHistory(out, []history.Entry{}); err != nil {
					return err
				}
			}

			repl := NewRepl(session, historyRenderService, ws.Config.Model, cmd.InOrStdin(), out)
			return repl.Run()
		},
	}

	return &ChatCommand{
		CobraCommand: cmd,
	}
}
