package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parchment-labs/parchment-cli/internal/adapters/driven/ai"
	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driving"
	"github.com/parchment-labs/parchment-cli/internal/core/services"
)

// defaultTopK is how many chunks retrieval supplies as context when no
// explicit document is named.
const defaultTopK = 5

var (
	queryDocumentID string
	queryTopK       int
	queryProvider   string
	queryModel      string
	queryAPIKey     string
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask a question about your documents",
	Long: `Synthesises an answer using a generative model. By default the
question is embedded and the best-matching ingested chunks are supplied
as context; --document grounds the answer in one whole document
instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryDocumentID, "document", "d", "", "ground the answer in this document")
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", defaultTopK, "number of chunks to retrieve as context")
	queryCmd.Flags().StringVar(&queryProvider, "provider", "", "LLM provider (gemini, openai)")
	queryCmd.Flags().StringVar(&queryModel, "model", "", "LLM model name")
	queryCmd.Flags().StringVar(&queryAPIKey, "api-key", "", "LLM API key (overrides config and environment)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if store == nil || embeddingService == nil {
		return errors.New("query services not configured")
	}

	// Validate connectivity up front so a bad key fails in the ping, not
	// after the full prompt round-trip.
	llm, err := ai.CreateAndValidateLLMService(llmSettings(queryProvider, queryModel, queryAPIKey))
	if err != nil {
		return describeQueryError(err)
	}
	if llm == nil {
		return fmt.Errorf("%w: set llm.api_key in config or GEMINI_API_KEY in the environment",
			domain.ErrLLMUnavailable)
	}
	defer llm.Close()

	svc := services.NewQueryService(store.DocumentStore(), embeddingService, llm, promptStore)

	answer, err := svc.Answer(context.Background(), args[0], driving.QueryOptions{
		DocumentID: queryDocumentID,
		TopK:       queryTopK,
	})
	if err != nil {
		return describeQueryError(err)
	}

	cmd.Println(answer)
	return nil
}

// describeQueryError adds a hint for the error categories a user can act on.
func describeQueryError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fmt.Errorf("%w (check your API key)", err)
	case errors.Is(err, domain.ErrQuotaExceeded):
		return fmt.Errorf("%w (wait and retry, or switch providers)", err)
	case errors.Is(err, domain.ErrModelUnavailable):
		return fmt.Errorf("%w (check the --model name)", err)
	default:
		return err
	}
}
