package initCommand

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/denormal/go-gitignore"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/gemini-chat/domain/repository/config"
	"github.com/t-kuni/gemini-chat/domain/repository/file"
	"github.com/t-kuni/gemini-chat/domain/service/configFindService"
	"github.com/t-kuni/gemini-chat/domain/service/workspaceResolve"
)

const gitignoreEntry = "/" + workspaceResolve.DataDirName

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository, fileRepository file.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gemini-chat workspace",
		Long:  `Initialize a new gemini-chat workspace by creating a gemini-chat.yml configuration file in the current directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := fileRepository.Getwd()
			if err != nil {
				return eris.Wrap(err, "failed to get working directory")
			}

			configPath := filepath.Join(currentDir, configFindService.ConfigFileNames[0])
			if fileRepository.Exists(configPath) {
				return eris.Errorf("%s already exists in the current directory", configFindService.ConfigFileNames[0])
			}

			err = configRepository.Write(configPath, config.NewDefaultConfig())
			if err != nil {
				return eris.Wrap(err, "failed to write config")
			}

			err = fileRepository.MkdirAll(filepath.Join(currentDir, workspaceResolve.DataDirName))
			if err != nil {
				return eris.Wrap(err, "failed to create data directory")
			}

			err = appendGitignore(fileRepository, filepath.Join(currentDir, ".gitignore"))
			if err != nil {
				return eris.Wrap(err, "failed to update .gitignore")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized gemini-chat workspace. Created %s in the current directory.\n", configFindService.ConfigFileNames[0])
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}

// appendGitignore は .gemini-chat が既存のパターンで無視されていない場合だけ追記します。
func appendGitignore(fileRepository file.Repository, path string) error {
	var content string
	if fileRepository.Exists(path) {
		data, err := fileRepository.Read(path)
		if err != nil {
			return err
		}
		content = string(data)
	}

	ignore := gitignore.New(strings.NewReader(content), filepath.Dir(path), nil)
	if match := ignore.Relative(workspaceResolve.DataDirName, true); match != nil && match.Ignore() {
		return nil
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += gitignoreEntry + "\n"

	return fileRepository.Write(path, []byte(content), 0644)
}
