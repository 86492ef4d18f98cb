package geminiclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é a fronteira com a API de geração de texto
type Client interface {
	GenerateContent(prompt string) (string, error)
}

// GeminiClient implementa Client sobre o endpoint generateContent
type GeminiClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente Gemini
func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent envia o prompt e devolve o texto do primeiro candidato
func (c *GeminiClient) GenerateContent(prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s",
		c.config.Gemini.Endpoint, c.config.Gemini.Model, c.config.Gemini.APIKey)

	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: prompt}},
		}},
		GenerationConfig: &generationConfig{
			Temperature: 0.7,
			TopP:        0.95,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "erro ao codificar requisição do Gemini")
	}

	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "erro ao chamar a API do Gemini")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler resposta do Gemini")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("API do Gemini retornou status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar resposta do Gemini")
	}

	if parsed.Error != nil {
		return "", errors.Errorf("erro do Gemini %d: %s", parsed.Error.Code, parsed.Error.Message)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
