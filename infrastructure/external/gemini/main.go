package gemini

import (
	"encoding/json"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	domainGemini "github.com/t-kuni/gemini-chat/domain/external/gemini"
	"github.com/t-kuni/gemini-chat/domain/model/sampling"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	generatePath   = "/v1beta/models/{model}:generateContent"
	apiKeyHeader   = "x-goog-api-key"
)

var ErrMissingAPIKey = eris.New("GEMINI_API_KEY is not set")

type GeminiClient struct {
	httpClient *resty.Client
	apiKey     string
}

type apiRequest struct {
	Contents         []apiContent        `json:"contents"`
	GenerationConfig apiGenerationConfig `json:"generationConfig"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

type apiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type apiResponse struct {
	Candidates []struct {
		Content      apiContent `json:"content"`
		FinishReason string     `json:"finishReason"`
	} `json:"candidates"`
}

// NewGeminiClient は環境変数 GEMINI_API_KEY と GEMINI_API_BASE_URL からクライアントを作成します。
func NewGeminiClient() *GeminiClient {
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return NewGeminiClientWithBaseURL(baseURL, os.Getenv("GEMINI_API_KEY"))
}

func NewGeminiClientWithBaseURL(baseURL string, apiKey string) *GeminiClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &GeminiClient{
		httpClient: client,
		apiKey:     apiKey,
	}
}

func (c *GeminiClient) GenerateContent(model string, req domainGemini.GenerateRequest) (domainGemini.GenerateResponse, error) {
	if c.apiKey == "" {
		return domainGemini.GenerateResponse{}, ErrMissingAPIKey
	}

	jsonBody, err := json.Marshal(convertRequest(req))
	if err != nil {
		return domainGemini.GenerateResponse{}, eris.Wrap(err, "failed to marshal request body")
	}

	// キーは URL に含めない
	var result apiResponse
	resp, err := c.httpClient.R().
		SetPathParam("model", model).
		SetHeader(apiKeyHeader, c.apiKey).
		SetBody(jsonBody).
		SetResult(&result).
		Post(generatePath)
	if err != nil {
		return domainGemini.GenerateResponse{}, eris.Wrap(err, "failed to send or decode request")
	}

	if resp.StatusCode() != 200 {
		return domainGemini.GenerateResponse{}, eris.Errorf("API request failed with status code %d and response: %s", resp.StatusCode(), resp.String())
	}

	return convertResponse(result), nil
}

func convertRequest(req domainGemini.GenerateRequest) apiRequest {
	contents := make([]apiContent, len(req.Contents))
	for i, content := range req.Contents {
		contents[i] = convertContent(content)
	}

	return apiRequest{
		Contents:         contents,
		GenerationConfig: convertGenerationConfig(req.GenerationConfig),
	}
}

func convertContent(content domainGemini.Content) apiContent {
	parts := make([]apiPart, len(content.Parts))
	for i, part := range content.Parts {
		parts[i] = apiPart{Text: part.Text}
	}
	return apiContent{Role: content.Role, Parts: parts}
}

func convertGenerationConfig(cfg sampling.Config) apiGenerationConfig {
	return apiGenerationConfig{
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		TopK:        cfg.TopK,
	}
}

func convertResponse(resp apiResponse) domainGemini.GenerateResponse {
	candidates := make([]domainGemini.Candidate, len(resp.Candidates))
	for i, candidate := range resp.Candidates {
		parts := make([]domainGemini.Part, len(candidate.Content.Parts))
		for j, part := range candidate.Content.Parts {
			parts[j] = domainGemini.Part{Text: part.Text}
		}
		candidates[i] = domainGemini.Candidate{
			Content:      domainGemini.Content{Role: candidate.Content.Role, Parts: parts},
			FinishReason: candidate.FinishReason,
		}
	}
	return domainGemini.GenerateResponse{Candidates: candidates}
}
