package token

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/gemini-chat/domain/repository/file"
	"github.com/t-kuni/gemini-chat/domain/repository/token"
)

type repositoryImpl struct {
	fileRepository file.Repository
}

func NewRepository(fileRepository file.Repository) token.Repository {
	return &repositoryImpl{fileRepository: fileRepository}
}

func (r *repositoryImpl) Read(path string) (string, error) {
	if !r.fileRepository.Exists(path) {
		return "", nil
	}

	content, err := r.fileRepository.Read(path)
	if err != nil {
		return "", eris.Wrapf(err, "failed to read token file: %s", path)
	}

	return strings.TrimSpace(string(content)), nil
}

func (r *repositoryImpl) Write(path string, tok string) error {
	err := r.fileRepository.Write(path, []byte(strings.TrimSpace(tok)+"\n"), 0600)
	if err != nil {
		return eris.Wrapf(err, "failed to write token file: %s", path)
	}
	return nil
}

func (r *repositoryImpl) Delete(path string) error {
	if !r.fileRepository.Exists(path) {
		return nil
	}

	err := r.fileRepository.Delete(path)
	if err != nil {
		return eris.Wrapf(err, "failed to delete token file: %s", path)
	}
	return nil
}
