package logoutCommand

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/gemini-chat/domain/repository/token"
	"github.com/t-kuni/gemini-chat/domain/service/workspaceResolve"
)

type LogoutCommand struct {
	CobraCommand *cobra.Command
}

func NewLogoutCommand(
	tokenRepository token.Repository,
	workspaceResolveService *workspaceResolve.WorkspaceResolveService,
) *LogoutCommand {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Delete the saved token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspaceResolveService.Resolve()
			if err != nil {
				return eris.Wrap(err, "failed to resolve workspace")
			}

			err = tokenRepository.Delete(ws.TokenPath())
			if err != nil {
				return eris.Wrap(err, "failed to delete token")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}

	return &LogoutCommand{
		CobraCommand: cmd,
	}
}
