package sendCommand

import (
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/gemini-chat/cmd/consoleView"
	"github.com/t-kuni/gemini-chat/domain/external/chatBackend"
	"github.com/t-kuni/gemini-chat/domain/external/gemini"
	"github.com/t-kuni/gemini-chat/domain/repository/token"
	"github.com/t-kuni/gemini-chat/domain/service/chatSession"
	"github.com/t-kuni/gemini-chat/domain/service/historyRender"
	"github.com/t-kuni/gemini-chat/domain/service/workspaceResolve"
)

type SendCommand struct {
	CobraCommand *cobra.Command
}

func NewSendCommand(
	geminiClient gemini.Client,
	backendClient chatBackend.Client,
	tokenRepository token.Repository,
	workspaceResolveService *workspaceResolve.WorkspaceResolveService,
	historyRenderService *historyRender.HistoryRenderService,
) *SendCommand {
	var inputFlag bool
	var temperature float64
	var topP float64
	var topK int

	cmd := &cobra.Command{
		Use:   "send [message...]",
		Short: "Send a single message to Gemini",
		Long:  `Send a single message to Gemini, save the exchange to the history backend and print the reply followed by the refreshed history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspaceResolveService.Resolve()
			if err != nil {
				return eris.Wrap(err, "failed to resolve workspace")
			}

			var message string
			if inputFlag {
				if len(args) > 0 {
					return eris.New("cannot use both message arguments and -i flag")
				}
				message, err = readStdin()
				if err != nil {
					return eris.Wrap(err, "failed to read from stdin")
				}
			} else {
				message = strings.Join(args, " ")
			}

			session := chatSession.NewChatSessionService(
				geminiClient,
				backendClient,
				tokenRepository,
				consoleView.NewConsoleView(cmd.OutOrStdout(), historyRenderService),
				chatSession.Options{
					Model:     ws.Config.Model,
					Sampling:  ws.Config.Sampling,
					TokenPath: ws.TokenPath(),
				},
			)

			if err := session.Open(); err != nil {
				return eris.Wrap(err, "failed to open session")
			}

			if cmd.Flags().Changed("temperature") {
				session.SetTemperature(temperature)
			}
			if cmd.Flags().Changed("top-p") {
				session.SetTopP(topP)
			}
			if cmd.Flags().Changed("top-k") {
				session.SetTopK(topK)
			}

			session.SetDraft(message)
			if err := session.Send(); err != nil {
				return eris.Wrap(err, "failed to send message")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&inputFlag, "input", "i", false, "Read the message from stdin")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "Temperature (0-1) for this message")
	cmd.Flags().Float64Var(&topP, "top-p", 0, "Top-p (0-1) for this message")
	cmd.Flags().IntVar(&topK, "top-k", 0, "Top-k (1-100) for this message")

	return &SendCommand{
		CobraCommand: cmd,
	}
}

func readStdin() (string, error) {
	stdin, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", eris.Wrap(err, "failed to read from stdin")
	}
	return strings.TrimSpace(string(stdin)), nil
}
