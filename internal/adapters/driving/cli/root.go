// Package cli implements the parchment command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/parchment-labs/parchment-cli/internal/adapters/driven/ai"
	configfile "github.com/parchment-labs/parchment-cli/internal/adapters/driven/config/file"
	"github.com/parchment-labs/parchment-cli/internal/adapters/driven/storage/blob"
	"github.com/parchment-labs/parchment-cli/internal/adapters/driven/storage/sqlite"
	"github.com/parchment-labs/parchment-cli/internal/chunker"
	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driving"
	"github.com/parchment-labs/parchment-cli/internal/core/services"
	"github.com/parchment-labs/parchment-cli/internal/extractors"
	"github.com/parchment-labs/parchment-cli/internal/extractors/pdf"
	"github.com/parchment-labs/parchment-cli/internal/extractors/plaintext"
	"github.com/parchment-labs/parchment-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose bool
	dataDir string
)

// Services wired by initServices and shared by all commands.
var (
	configStore      driven.ConfigStore
	promptStore      driven.PromptStore
	store            *sqlite.Store
	blobStore        driven.BlobStore
	embeddingService driven.EmbeddingService
	libraryService   driving.LibraryService
	ingestionService driving.IngestionService
)

var rootCmd = &cobra.Command{
	Use:   "parchment",
	Short: "Ask questions about your documents",
	Long: `Parchment ingests PDF, text and markdown files, embeds their content
in overlapping chunks, and answers natural-language questions grounded
in what you uploaded.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	defer teardown()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup wires stores and services before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	var err error
	configStore, err = configfile.NewConfigStore(subdir(""))
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	promptStore, err = configfile.NewPromptStore(subdir("prompts"))
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	store, err = sqlite.NewStore(subdir("data"))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	blobStore, err = blob.NewStore(subdir("blobs"))
	if err != nil {
		return fmt.Errorf("opening blob store: %w", err)
	}

	// Validation is a no-op for the local fallback; a configured remote
	// provider with bad credentials fails here instead of mid-ingestion.
	embeddingService, err = ai.CreateAndValidateEmbeddingService(embeddingSettings())
	if err != nil {
		return err
	}
	logger.Debug("Embedding provider: %s (%d dims)",
		embeddingService.ModelName(), embeddingService.Dimensions())

	registry := extractors.NewRegistry(plaintext.New(), pdf.New())

	var chunkOpts []chunker.Option
	if size := configStore.GetInt("chunking.size"); size > 0 {
		chunkOpts = append(chunkOpts, chunker.WithChunkSize(size))
	}
	if _, ok := configStore.Get("chunking.overlap"); ok {
		chunkOpts = append(chunkOpts, chunker.WithOverlap(configStore.GetInt("chunking.overlap")))
	}
	ch := chunker.New(chunkOpts...)

	libraryService = services.NewLibraryService(store.FileStore(), store.DocumentStore(), blobStore)
	ingestionService = services.NewIngestionService(
		store.FileStore(), store.DocumentStore(), blobStore, registry, embeddingService, ch)

	return nil
}

// teardown releases everything setup opened.
func teardown() {
	if embeddingService != nil {
		_ = embeddingService.Close()
	}
	if store != nil {
		_ = store.Close()
	}
}

// subdir resolves a store directory under --data-dir, or "" so each
// adapter falls back to its ~/.parchment default.
func subdir(name string) string {
	if dataDir == "" {
		return ""
	}
	if name == "" {
		return dataDir
	}
	return filepath.Join(dataDir, name)
}

// embeddingSettings resolves the embedding provider from config and
// environment. Unconfigured means the local embedder.
func embeddingSettings() *domain.EmbeddingSettings {
	apiKey := configStore.GetString("embedding.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return &domain.EmbeddingSettings{
		Provider: domain.AIProvider(configStore.GetString("embedding.provider")),
		Model:    configStore.GetString("embedding.model"),
		BaseURL:  configStore.GetString("embedding.base_url"),
		APIKey:   apiKey,
	}
}

// llmSettings resolves the generative provider from flags, config and
// environment, in that order of precedence.
func llmSettings(provider, model, apiKey string) *domain.LLMSettings {
	if provider == "" {
		provider = configStore.GetString("llm.provider")
	}
	if provider == "" {
		provider = string(domain.AIProviderGemini)
	}
	if model == "" {
		model = configStore.GetString("llm.model")
	}
	if apiKey == "" {
		apiKey = configStore.GetString("llm.api_key")
	}
	if apiKey == "" {
		switch domain.AIProvider(provider) {
		case domain.AIProviderGemini:
			apiKey = os.Getenv("GEMINI_API_KEY")
		case domain.AIProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	return &domain.LLMSettings{
		Provider: domain.AIProvider(provider),
		Model:    model,
		BaseURL:  configStore.GetString("llm.base_url"),
		APIKey:   apiKey,
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.parchment/data)")
}
