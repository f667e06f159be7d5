package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzeman/facegate/internal/config"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Rebuild the Q&A retrieval index",
	Long: `Rebuild the question-answering retrieval index from the current
registration log. Without a configured LLM the documents are stored
without embeddings and vector search stays disabled.`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	pool, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := cmd.Context()
	qaService, providerName, err := newQAService(ctx, cfg, pool)
	if err != nil {
		return err
	}

	result, err := qaService.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("failed to rebuild index: %w", err)
	}

	fmt.Printf("Indexed %d document(s)\n", result.Documents)
	if result.Skipped {
		fmt.Println("No LLM configured, embeddings skipped")
	} else {
		fmt.Printf("Embedded %d document(s) with %s\n", result.Indexed, providerName)
	}
	return nil
}
