package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProviderDescription(t *testing.T) {
	tests := []struct {
		provider AIProvider
		want     string
	}{
		{AIProviderLocal, "Local deterministic embedder (no API key)"},
		{AIProviderGemini, "Google Gemini (cloud)"},
		{AIProviderOpenAI, "OpenAI (cloud)"},
		{AIProvider("mystery"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.provider.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.provider.Description())
		})
	}
}

func TestEmbeddingSettingsIsConfigured(t *testing.T) {
	assert.True(t, EmbeddingSettings{Provider: AIProviderLocal}.IsConfigured())
	assert.True(t, EmbeddingSettings{Provider: AIProviderOpenAI, APIKey: "k"}.IsConfigured())
	assert.False(t, EmbeddingSettings{Provider: AIProviderOpenAI}.IsConfigured())
	assert.False(t, EmbeddingSettings{}.IsConfigured())
	assert.False(t, EmbeddingSettings{Provider: AIProvider("mystery"), APIKey: "k"}.IsConfigured())
}

func TestLLMSettingsIsConfigured(t *testing.T) {
	assert.True(t, LLMSettings{Provider: AIProviderGemini, APIKey: "k"}.IsConfigured())
	assert.False(t, LLMSettings{Provider: AIProviderGemini}.IsConfigured())
	assert.False(t, LLMSettings{}.IsConfigured())
}

func TestProviderLists(t *testing.T) {
	assert.Equal(t, []AIProvider{AIProviderLocal, AIProviderOpenAI}, AllEmbeddingProviders())
	assert.Equal(t, []AIProvider{AIProviderGemini, AIProviderOpenAI}, AllLLMProviders())
}
