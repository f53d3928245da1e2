package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parchment-labs/parchment-cli/internal/chunker"
	"github.com/parchment-labs/parchment-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration stored in config.toml.

Keys use dot notation, e.g. llm.provider or chunking.size.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and persists it immediately.
Values that parse as integers or booleans are stored as such;
everything else is stored as a string.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Configuration: %s\n", configStore.Path())
	cmd.Println()

	emb := embeddingSettings()
	cmd.Println("[Embedding]")
	printProviderSettings(cmd, emb.Provider, emb.Model, emb.APIKey,
		emb.IsConfigured(), domain.AllEmbeddingProviders())
	cmd.Println()

	llm := llmSettings("", "", "")
	cmd.Println("[LLM]")
	printProviderSettings(cmd, llm.Provider, llm.Model, llm.APIKey,
		llm.IsConfigured(), domain.AllLLMProviders())
	cmd.Println()

	size := configStore.GetInt("chunking.size")
	if size <= 0 {
		size = chunker.DefaultChunkSize
	}
	overlap := chunker.DefaultChunkOverlap
	if _, ok := configStore.Get("chunking.overlap"); ok {
		overlap = configStore.GetInt("chunking.overlap")
	}
	cmd.Println("[Chunking]")
	cmd.Printf("  Size:    %d\n", size)
	cmd.Printf("  Overlap: %d\n", overlap)

	return nil
}

func printProviderSettings(cmd *cobra.Command, provider domain.AIProvider,
	model, apiKey string, configured bool, available []domain.AIProvider) {
	switch {
	case provider == "":
		cmd.Printf("  Provider: (not set)\n")
	case provider.IsValid():
		cmd.Printf("  Provider: %s\n", provider.Description())
	default:
		cmd.Printf("  Provider: %s (unknown)\n", provider)
	}
	if model != "" {
		cmd.Printf("  Model: %s\n", model)
	}
	if provider.RequiresAPIKey() {
		if apiKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(apiKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status := "configured"
	if !configured {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)

	names := make([]string, len(available))
	for i, p := range available {
		names[i] = p.String()
	}
	cmd.Printf("  Available: %s\n", strings.Join(names, ", "))
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], parseConfigValue(args[1])
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

// parseConfigValue keeps numeric and boolean values typed so GetInt and
// GetBool see them after a reload.
func parseConfigValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
