package configFindService

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/gemini-chat/util/path"
)

var ErrConfigNotFound = eris.New("gemini-chat.yml または gemini-chat.yaml が見つかりませんでした")

var ConfigFileNames = []string{"gemini-chat.yml", "gemini-chat.yaml"}

type ConfigFindService struct {
	fileRepository FileRepository
}

type FileRepository interface {
	Getwd() (string, error)
	Exists(path string) bool
}

func NewConfigFindService(fileRepository FileRepository) *ConfigFindService {
	return &ConfigFindService{
		fileRepository: fileRepository,
	}
}

// FindConfig はカレントディレクトリから親方向に設定ファイルを探します。
func (s *ConfigFindService) FindConfig() (string, error) {
	currentDir, err := s.WorkingDir()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(currentDir, name)
			if s.fileRepository.Exists(candidate) {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrConfigNotFound
}

func (s *ConfigFindService) WorkingDir() (string, error) {
	currentDir, err := s.fileRepository.Getwd()
	if err != nil {
		return "", eris.Wrap(err, "failed to get working directory")
	}

	currentDir, err = path.AfterGetAbsPath(currentDir)
	if err != nil {
		return "", eris.Wrap(err, "failed to resolve working directory")
	}
	return currentDir, nil
}

func (s *ConfigFindService) GetProjectRoot(configPath string) string {
	return filepath.Dir(configPath)
}
