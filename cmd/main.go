package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/t-kuni/gemini-chat/cmd/chatCommand"
	"github.com/t-kuni/gemini-chat/cmd/historyCommand"
	"github.com/t-kuni/gemini-chat/cmd/initCommand"
	"github.com/t-kuni/gemini-chat/cmd/loginCommand"
	"github.com/t-kuni/gemini-chat/cmd/logoutCommand"
	"github.com/t-kuni/gemini-chat/cmd/sendCommand"
	"github.com/t-kuni/gemini-chat/cmd/versionCommand"
	"github.com/t-kuni/gemini-chat/domain/service/configFindService"
	"github.com/t-kuni/gemini-chat/domain/service/historyRender"
	"github.com/t-kuni/gemini-chat/domain/service/workspaceResolve"
	"github.com/t-kuni/gemini-chat/infrastructure/external/chatBackend"
	"github.com/t-kuni/gemini-chat/infrastructure/external/gemini"
	configRepo "github.com/t-kuni/gemini-chat/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/gemini-chat/infrastructure/repository/file"
	tokenRepo "github.com/t-kuni/gemini-chat/infrastructure/repository/token"
	"github.com/t-kuni/gemini-chat/infrastructure/system/requestId"
	"github.com/t-kuni/gemini-chat/infrastructure/system/logger"
	"go.uber.org/zap"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "gemini-chat",
		Short: "A terminal chat client for Gemini",
		Long: `gemini-chat sends your messages to the Gemini API with adjustable sampling
parameters (temperature, top-p, top-k) and keeps the exchanges in a
token-protected history backend.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logger.NewLogger(verbose)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(l)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// stderr への Sync は環境によって EINVAL を返すため無視する
			_ = zap.L().Sync()
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	geminiClient := gemini.NewGeminiClient()
	backendClient := chatBackend.NewChatBackendClient(requestId.NewKsuidGenerator())
	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	tokenRepository := tokenRepo.NewRepository(fileRepository)
	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	workspaceResolveSrv := workspaceResolve.NewWorkspaceResolveService(configFindSrv, configRepository)
	historyRenderSrv := historyRender.NewHistoryRenderService(time.Local)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository, fileRepository).CobraCommand)
	cmd.AddCommand(chatCommand.NewChatCommand(
		geminiClient,
		backendClient,
		tokenRepository,
		workspaceResolveSrv,
		historyRenderSrv,
	).CobraCommand)
	cmd.AddCommand(sendCommand.NewSendCommand(
		geminiClient,
		backendClient,
		tokenRepository,
		workspaceResolveSrv,
		historyRenderSrv,
	).CobraCommand)
	cmd.AddCommand(historyCommand.NewHistoryCommand(
		geminiClient,
		backendClient,
		tokenRepository,
		workspaceResolveSrv,
		historyRenderSrv,
	).CobraCommand)
	cmd.AddCommand(loginCommand.NewLoginCommand(tokenRepository, workspaceResolveSrv).CobraCommand)
	cmd.AddCommand(logoutCommand.NewLogoutCommand(tokenRepository, workspaceResolveSrv).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
