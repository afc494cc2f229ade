package gemini

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/gemini-chat/domain/model/sampling"
	"testing"
)

func TestNewUserRequest(t *testing.T) {
	req := NewUserRequest("hi", sampling.NewDefaultConfig())

	assert.Len(t, req.Contents, 1)
	assert.Equal(t, RoleUser, req.Contents[0].Role)
	assert.Equal(t, []Part{{Text: "hi"}}, req.Contents[0].Parts)
	assert.Equal(t, sampling.Config{Temperature: 0.7, TopP: 0.9, TopK: 40}, req.GenerationConfig)
}

func TestGenerateResponse_FirstText(t *testing.T) {
	t.Run("先頭候補の先頭パートが返ること", func(t *testing.T) {
		resp := GenerateResponse{Candidates: []Candidate{
			{Content: Content{Role: RoleModel, Parts: []Part{{Text: "first"}, {Text: "second"}}}},
			{Content: Content{Role: RoleModel, Parts: []Part{{Text: "other"}}}},
		}}

		text, err := resp.FirstText()
		assert.NoError(t, err)
		assert.Equal(t, "first", text)
	})

	t.Run("候補が無い場合はErrNoCandidateが返ること", func(t *testing.T) {
		_, err := GenerateResponse{}.FirstText()
		assert.True(t, errors.Is(err, ErrNoCandidate))

		_, err = GenerateResponse{Candidates: []Candidate{{}}}.FirstText()
		assert.True(t, errors.Is(err, ErrNoCandidate))
	})
}
