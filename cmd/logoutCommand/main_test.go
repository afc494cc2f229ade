package logoutCommand

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/gemini-chat/domain/service/configFindService"
	"github.com/t-kuni/gemini-chat/domain/service/workspaceResolve"
	configRepo "github.com/t-kuni/gemini-chat/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/gemini-chat/infrastructure/repository/file"
	tokenRepo "github.com/t-kuni/gemini-chat/infrastructure/repository/token"
	"github.com/t-kuni/gemini-chat/testUtil"
)

func TestLogoutCommand(t *testing.T) {
	callCommand := func() (string, error) {
		fileRepository := fileRepo.NewFileRepository()
		testee := NewLogoutCommand(
			tokenRepo.NewRepository(fileRepository),
			workspaceResolve.NewWorkspaceResolveService(
				configFindService.NewConfigFindService(fileRepository),
				configRepo.NewConfigRepository(),
			),
		)

		var out strings.Builder
		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(testee.CobraCommand)
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"logout"})

		err := rootCmd.Execute()
		return out.String(), err
	}

	t.Run("保存済みのトークンが削除されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile(".gemini-chat/token", []byte("secret\n"))

		out, err := callCommand()
		assert.NoError(t, err)
		assert.Equal(t, "Logged out.\n", out)
		space.AssertNotExistPath(".gemini-chat/token")
	})

	t.Run("未ログインでもエラーにならないこと", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		_, err := callCommand()
		assert.NoError(t, err)
	})
}
