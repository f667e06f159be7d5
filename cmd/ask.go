package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mzeman/facegate/internal/config"
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Ask a question about the registration log",
	Long: `Ask a natural-language question about the registration log,
for example "who registered last?" or "how many people are registered?".
Uses the configured LLM when available, otherwise a local fallback.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	question := strings.Join(args, " ")

	pool, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := cmd.Context()
	qaService, _, err := newQAService(ctx, cfg, pool)
	if err != nil {
		return err
	}

	if _, err := qaService.Ingest(ctx); err != nil {
		fmt.Printf("Warning: index build failed: %v\n", err)
	}

	answer, err := qaService.Query(ctx, question)
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}

	fmt.Println(answer.Text)
	fmt.Printf("  (backend: %s, sources: %d)\n", answer.Backend, answer.SourcesCount)
	return nil
}
