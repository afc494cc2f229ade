package token

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/gemini-chat/domain/repository/file"
	fileRepo "github.com/t-kuni/gemini-chat/infrastructure/repository/file"
	"github.com/t-kuni/gemini-chat/testUtil"
	"go.uber.org/mock/gomock"
)

func TestRepository(t *testing.T) {
	t.Run("書き込んだトークンが読み込めること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		testee := NewRepository(fileRepo.NewFileRepository())
		path := filepath.Join(".gemini-chat", "token")

		err := testee.Write(path, "  secret-token \n")
		assert.NoError(t, err)

		info, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		tok, err := testee.Read(path)
		assert.NoError(t, err)
		assert.Equal(t, "secret-token", tok)
	})

	t.Run("未保存の場合は空文字が返ること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		tok, err := NewRepository(fileRepo.NewFileRepository()).Read("missing")
		assert.NoError(t, err)
		assert.Equal(t, "", tok)
	})

	t.Run("削除後は存在しないこと、未保存の削除もエラーにならないこと", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		testee := NewRepository(fileRepo.NewFileRepository())
		space.WriteFile("token", []byte("secret\n"))

		assert.NoError(t, testee.Delete("token"))
		space.AssertNotExistPath("token")
		assert.NoError(t, testee.Delete("token"))
	})

	t.Run("削除に失敗した場合はエラーが返ること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Exists("token").Return(true)
		mockFileRepo.EXPECT().Delete("token").Return(errors.New("read-only file system"))

		err := NewRepository(mockFileRepo).Delete("token")
		assert.Error(t, err)
	})
}
