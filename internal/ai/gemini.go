package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const (
	geminiModel          = "gemini-2.5-flash"
	geminiEmbeddingModel = "text-embedding-004"
)

// GeminiProvider answers questions and embeds text using the Gemini API.
type GeminiProvider struct {
	client       *genai.Client
	embeddingDim int32
}

func NewGeminiProvider(ctx context.Context, apiKey string, embeddingDim int) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:       client,
		embeddingDim: int32(embeddingDim),
	}, nil
}

func (p *GeminiProvider) Name() string {
	return geminiModel
}

func (p *GeminiProvider) Answer(ctx context.Context, question string, documents []string) (string, error) {
	userContent := buildQAUserContent(question, documents)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: loadedPrompts.QASystem + "\n\n" + userContent},
			},
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	answer := result.Text()
	if answer == "" {
		return "", errors.New("no response from Gemini")
	}
	return answer, nil
}

func (p *GeminiProvider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: text}}},
	}

	config := &genai.EmbedContentConfig{
		OutputDimensionality: &p.embeddingDim,
	}

	result, err := p.client.Models.EmbedContent(ctx, geminiEmbeddingModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini embedding error: %w", err)
	}
	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, errors.New("no embedding from Gemini")
	}

	return result.Embeddings[0].Values, nil
}
