package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/marcelomendesnai/medpet/internal/logger"
	"github.com/marcelomendesnai/medpet/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"

	// Apology is returned whenever the external service fails. The caller
	// always gets an answer, never an error.
	Apology = "Ops! Tive um probleminha para pensar. Tente novamente em um instante."

	// emptyAnswer covers the rare case of a well-formed response with no text.
	emptyAnswer = "Desculpe, não consegui entender agora. Pode repetir?"
)

// Client answers free-text questions about the caregiver's medications.
type Client interface {
	Ask(ctx context.Context, question string, meds []models.Medication) string
}

// GeminiClient talks to the Google Generative Language REST API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a GeminiClient.
type Option func(*GeminiClient)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(url string) Option {
	return func(c *GeminiClient) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *GeminiClient) { c.model = model }
}

func NewGeminiClient(apiKey string, opts ...Option) *GeminiClient {
	c := &GeminiClient{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask sends the question with a medication-context prompt and returns the
// model's answer. Every failure path degrades to the apology string.
func (c *GeminiClient) Ask(ctx context.Context, question string, meds []models.Medication) string {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(question, meds)}}}},
	})
	if err != nil {
		logger.Warn("Assistant request encoding failed", "error", err)
		return Apology
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logger.Warn("Assistant request creation failed", "error", err)
		return Apology
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Assistant call failed", "error", err)
		return Apology
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Assistant call returned non-OK status", "status", resp.StatusCode)
		return Apology
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Warn("Assistant response decoding failed", "error", err)
		return Apology
	}

	text := extractText(parsed)
	if text == "" {
		return emptyAnswer
	}
	return text
}

func extractText(resp generateResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	return strings.TrimSpace(b.String())
}

// buildPrompt embeds the current medication list and the product rule that
// skipping a dose never advances progress, so the assistant can explain why
// a skipped dose pushes the end of the treatment later.
func buildPrompt(question string, meds []models.Medication) string {
	var context strings.Builder
	for _, m := range meds {
		fmt.Fprintf(&context, "- %s: %s, %dh\n", m.Name, m.Dosage, m.FrequencyHours)
	}

	return fmt.Sprintf(`Você é um assistente virtual gentil e prestativo chamado "Cuidador Amigo", especializado em ajudar cuidadores a entenderem os medicamentos sob sua responsabilidade.

Medicamentos atuais:
%s
Informação importante sobre o app:
- O app rastreia o progresso por doses (ex: 5 de 20).
- Se o usuário pular uma dose, o app NÃO aumenta o contador. O tratamento não "acaba" mais rápido; a dose continua sobrando e terá que ser tomada ao final, o que adia o término do tratamento.

Pergunta: "%s"

Regras:
1. Responda em português de forma carinhosa e simples.
2. Use termos fáceis de entender.
3. Sempre mencione que dúvidas sobre efeitos colaterais graves devem ser levadas ao médico ou veterinário.
4. Se a pergunta for sobre pular doses ou adiar o fim do tratamento, explique que o app faz isso para garantir que a caixinha completa do remédio seja tomada.`,
		context.String(), question)
}
