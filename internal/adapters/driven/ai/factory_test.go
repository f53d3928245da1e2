package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
)

// providerServer fakes a provider API endpoint with a fixed response.
func providerServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCreateEmbeddingService_DefaultsToLocal(t *testing.T) {
	svc, err := CreateEmbeddingService(nil)

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, 32, svc.Dimensions())
}

func TestCreateEmbeddingService_Local(t *testing.T) {
	svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderLocal,
	})

	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestCreateEmbeddingService_OpenAI(t *testing.T) {
	svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "sk-test",
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "text-embedding-3-small", svc.ModelName())
}

func TestCreateEmbeddingService_OpenAIWithoutKeyFallsBackToLocal(t *testing.T) {
	// Missing key means not configured, which selects the local embedder.
	svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderOpenAI,
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "local-sinusoidal-32", svc.ModelName())
}

func TestCreateEmbeddingService_GeminiRejected(t *testing.T) {
	_, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderGemini,
		APIKey:   "key",
	})

	assert.Error(t, err)
}

func TestCreateLLMService_Unconfigured(t *testing.T) {
	svc, err := CreateLLMService(nil)

	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateLLMService_Gemini(t *testing.T) {
	svc, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderGemini,
		APIKey:   "key",
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "gemini-1.5-pro-latest", svc.ModelName())
}

func TestCreateLLMService_OpenAI(t *testing.T) {
	svc, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "sk-test",
		Model:    "gpt-4o",
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "gpt-4o", svc.ModelName())
}

func TestCreateLLMService_UnknownProvider(t *testing.T) {
	_, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProvider("mystery"),
		APIKey:   "key",
	})

	// Unknown providers are not configured, so no service and no error.
	// An explicitly invalid-but-keyed provider still must not panic.
	assert.NoError(t, err)
}

func TestCreateAndValidateEmbeddingService_LocalPassesTrivially(t *testing.T) {
	svc, err := CreateAndValidateEmbeddingService(nil)

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "local-sinusoidal-32", svc.ModelName())
}

func TestCreateAndValidateEmbeddingService_Reachable(t *testing.T) {
	server := providerServer(t, http.StatusOK, map[string]any{
		"data": []map[string]any{
			{"index": 0, "embedding": []float32{0.1, 0.2}},
		},
	})

	svc, err := CreateAndValidateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "sk-test",
		BaseURL:  server.URL,
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.NoError(t, svc.Close())
}

func TestCreateAndValidateEmbeddingService_BadCredentials(t *testing.T) {
	server := providerServer(t, http.StatusUnauthorized, map[string]any{
		"error": map[string]any{
			"message": "Incorrect API key provided",
			"type":    "invalid_request_error",
		},
	})

	_, err := CreateAndValidateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "sk-bad",
		BaseURL:  server.URL,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCreateAndValidateLLMService_Unconfigured(t *testing.T) {
	svc, err := CreateAndValidateLLMService(nil)

	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateAndValidateLLMService_Reachable(t *testing.T) {
	server := providerServer(t, http.StatusOK, map[string]any{"models": []any{}})

	svc, err := CreateAndValidateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderGemini,
		APIKey:   "key",
		BaseURL:  server.URL,
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.NoError(t, svc.Close())
}

func TestCreateAndValidateLLMService_BadCredentials(t *testing.T) {
	server := providerServer(t, http.StatusForbidden, map[string]any{
		"error": map[string]any{
			"code":    403,
			"message": "API key not valid. Please pass a valid API key.",
			"status":  "PERMISSION_DENIED",
		},
	})

	_, err := CreateAndValidateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderGemini,
		APIKey:   "bad",
		BaseURL:  server.URL,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestProviderValidation(t *testing.T) {
	assert.True(t, domain.AIProviderLocal.IsValid())
	assert.True(t, domain.AIProviderGemini.IsValid())
	assert.True(t, domain.AIProviderOpenAI.IsValid())
	assert.False(t, domain.AIProvider("mystery").IsValid())

	assert.False(t, domain.AIProviderLocal.RequiresAPIKey())
	assert.True(t, domain.AIProviderGemini.RequiresAPIKey())
}
