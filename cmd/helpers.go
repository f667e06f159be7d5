package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzeman/facegate/internal/ai"
	"github.com/mzeman/facegate/internal/config"
	"github.com/mzeman/facegate/internal/database/postgres"
	"github.com/mzeman/facegate/internal/qa"
)

// connectDatabase opens the PostgreSQL pool and runs pending migrations.
func connectDatabase(cfg *config.Config) (*postgres.Pool, error) {
	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.Initialize(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	return pool, nil
}

// newProvider picks an LLM provider based on configured API keys.
// Gemini wins when both are configured. Returns nils when neither key
// is set; the Q&A service then degrades to its local backend.
func newProvider(ctx context.Context, cfg *config.Config) (ai.Provider, ai.Embedder, error) {
	if cfg.Gemini.APIKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.QA.EmbeddingDim)
		if err != nil {
			return nil, nil, err
		}
		return provider, provider, nil
	}
	if cfg.OpenAI.Token != "" {
		provider := ai.NewOpenAIProvider(cfg.OpenAI.Token, cfg.QA.EmbeddingDim)
		return provider, provider, nil
	}
	return nil, nil, nil
}

// newQAService wires the Q&A service on top of the given pool.
func newQAService(ctx context.Context, cfg *config.Config, pool *postgres.Pool) (*qa.Service, string, error) {
	provider, embedder, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create LLM provider: %w", err)
	}

	providerName := ""
	if provider != nil {
		providerName = provider.Name()
	}

	service := qa.NewService(
		postgres.NewPersonRepository(pool),
		postgres.NewDocumentRepository(pool),
		provider,
		embedder,
		cfg.QA.RetrievalSize,
	)
	return service, providerName, nil
}
