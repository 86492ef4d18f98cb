package gemini

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/utmdash/utmdash-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sampleSize limita quantas linhas vão no prompt
const sampleSize = 10

const (
	emptyResponseMessage = "Não foi possível gerar insights no momento."
	failureMessage       = "Erro ao processar análise inteligente. Verifique sua conexão ou volume de dados."
)

// Advisor gera a análise em prosa do dataset atual
type Advisor interface {
	AnalyzeDataset(dataset *domain.Dataset) string
}

// Service implementa Advisor sobre o cliente Gemini. Falhas nunca são
// propagadas: a resposta degrada para uma mensagem fixa.
type Service struct {
	client geminiclient.Client
}

// New cria uma nova instância do serviço de análise
func New(client geminiclient.Client) *Service {
	return &Service{client: client}
}

// AnalyzeDataset envia uma amostra limitada do dataset e devolve o texto
// gerado, ou a mensagem de contingência em qualquer falha.
func (s *Service) AnalyzeDataset(dataset *domain.Dataset) string {
	prompt, err := BuildPrompt(dataset)
	if err != nil {
		log.L.WithError(err).Error("insights: erro ao montar o prompt de análise")
		return failureMessage
	}

	text, err := s.client.GenerateContent(prompt)
	if err != nil {
		log.L.WithError(err).Error("insights: falha na análise do Gemini")
		return failureMessage
	}

	if text == "" {
		return emptyResponseMessage
	}

	return text
}

// BuildPrompt monta o prompt de análise: resumo de colunas, contagem de
// linhas e as primeiras linhas como amostra.
func BuildPrompt(dataset *domain.Dataset) (string, error) {
	sample := dataset.Rows
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	sampleJSON, err := json.Marshal(sample)
	if err != nil {
		return "", err
	}

	summary := make([]string, 0, len(dataset.Headers))
	for _, header := range dataset.Headers {
		summary = append(summary, fmt.Sprintf("%s (%s)", header, dataset.Types[header]))
	}

	return fmt.Sprintf(`Analyze the following data summary from a user's spreadsheet.
Columns: %s
Row count: %d
Sample Data (first %d rows): %s

Provide a concise analysis in Portuguese focusing on:
1. Key trends or anomalies discovered.
2. A brief business summary.
3. Three actionable recommendations based on the numbers.

Format the output in professional Markdown.`,
		strings.Join(summary, ", "), len(dataset.Rows), sampleSize, string(sampleJSON)), nil
}
