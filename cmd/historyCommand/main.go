package historyCommand

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

type HistoryCommand struct {
	CobraCommand *cobra.Command
}

func NewHistoryCommand(
	geminiClient gemini.Client,
	backendClient chatBackend.Client,
	tokenRepository token.Repository,
	workspaceResolveService *workspaceResolve.WorkspaceResolveService,
	historyRenderService *historyRender.HistoryRenderService,
) *HistoryCommand {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the saved chat history",
		Long:  `Fetch the chat history of the logged-in user from the history backend and print it in the order the backend returns.`,
		Args:  cobra.NoArgs,
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
				return historyRenderService.RenderHistory(out, []history.Entry{})
			}
			return nil
		},
	}

	return &HistoryCommand{
		CobraCommand: cmd,
	}
}
