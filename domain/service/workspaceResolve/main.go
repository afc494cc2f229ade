package workspaceResolve

import (
	"errors"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/gemini-chat/domain/repository/config"
	"github.com/t-kuni/gemini-chat/domain/service/configFindService"
)

const (
	DataDirName   = ".gemini-chat"
	TokenFileName = "token"
)

// Workspace は設定ファイルとトークンの配置をまとめたものです。
// 設定ファイルが無い場合、ConfigPath は空でカレントディレクトリをルートとします。
type Workspace struct {
	RootDir    string
	ConfigPath string
	Config     *config.Config
}

func (w Workspace) DataDir() string {
	return filepath.Join(w.RootDir, DataDirName)
}

func (w Workspace) TokenPath() string {
	return filepath.Join(w.DataDir(), TokenFileName)
}

type WorkspaceResolveService struct {
	configFindService *configFindService.ConfigFindService
	configRepository  config.Repository
}

func NewWorkspaceResolveService(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
) *WorkspaceResolveService {
	return &WorkspaceResolveService{
		configFindService: configFindService,
		configRepository:  configRepository,
	}
}

func (s *WorkspaceResolveService) Resolve() (Workspace, error) {
	configPath, err := s.configFindService.FindConfig()
	if errors.Is(err, configFindService.ErrConfigNotFound) {
		wd, err := s.configFindService.WorkingDir()
		if err != nil {
			return Workspace{}, err
		}
		return Workspace{
			RootDir: wd,
			Config:  config.NewDefaultConfig(),
		}, nil
	}
	if err != nil {
		return Workspace{}, eris.Wrap(err, "failed to find config file")
	}

	cfg, err := s.configRepository.Read(configPath)
	if err != nil {
		return Workspace{}, eris.Wrapf(err, "failed to read config file: %s", configPath)
	}

	return Workspace{
		RootDir:    s.configFindService.GetProjectRoot(configPath),
		ConfigPath: configPath,
		Config:     cfg,
	}, nil
}
