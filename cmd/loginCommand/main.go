package loginCommand

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/gemini-chat/domain/repository/token"
	"github.com/t-kuni/gemini-chat/domain/service/workspaceResolve"
)

type LoginCommand struct {
	CobraCommand *cobra.Command
}

func NewLoginCommand(
	tokenRepository token.Repository,
	workspaceResolveService *workspaceResolve.WorkspaceResolveService,
) *LoginCommand {
	var inputFlag bool

	cmd := &cobra.Command{
		Use:   "login [token]",
		Short: "Save the token used for the history backend",
		Long:  `Save the bearer token issued by the history backend. The token is stored as-is and sent with every history request.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspaceResolveService.Resolve()
			if err != nil {
				return eris.Wrap(err, "failed to resolve workspace")
			}

			var tok string
			if inputFlag {
				if len(args) > 0 {
					return eris.New("cannot use both token argument and -i flag")
				}
				stdin, err := io.ReadAll(os.Stdin)
				if err != nil {
					return eris.Wrap(err, "failed to read from stdin")
				}
				tok = string(stdin)
			} else if len(args) == 1 {
				tok = args[0]
			}

			tok = strings.TrimSpace(tok)
			if tok == "" {
				return eris.New("token is required")
			}

			err = tokenRepository.Write(ws.TokenPath(), tok)
			if err != nil {
				return eris.Wrap(err, "failed to save token")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in. Token saved to %s\n", ws.TokenPath())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&inputFlag, "input", "i", false, "Read the token from stdin")

	return &LoginCommand{
		CobraCommand: cmd,
	}
}
