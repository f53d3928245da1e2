package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against a scratch data directory and
// returns combined output.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
		teardown()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, t.TempDir(), "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "parchment version test-version-1.0.0")
}

func TestUploadCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, t.TempDir(), "upload")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestUploadCmd_MissingFile(t *testing.T) {
	_, err := execute(t, t.TempDir(), "upload", "/no/such/file.txt")

	assert.Error(t, err)
}

func TestUploadIngestQueryFlow(t *testing.T) {
	dir := t.TempDir()

	// Seed a text file worth several chunks.
	docPath := filepath.Join(dir, "handbook.txt")
	content := strings.Repeat("The handbook explains the vacation policy in detail. ", 30)
	require.NoError(t, os.WriteFile(docPath, []byte(content), 0600))

	// Upload and ingest in one go; the default config selects the local
	// embedder, so no credentials are needed.
	out, err := execute(t, dir, "upload", docPath, "--ingest")
	require.NoError(t, err)
	assert.Contains(t, out, "Uploaded handbook.txt")
	assert.Contains(t, out, "Ingested document")
	assert.Contains(t, out, "Embedded:")

	fileID := extractID(t, out, `ID:\s+(\S+)`)

	// The file and its document are visible.
	out, err = execute(t, dir, "files", "list")
	require.NoError(t, err)
	assert.Contains(t, out, fileID)
	assert.Contains(t, out, "handbook.txt")

	out, err = execute(t, dir, "documents", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 1 documents")

	docID := extractID(t, out, `  (\S+)\n    Name:`)

	out, err = execute(t, dir, "documents", "show", docID)
	require.NoError(t, err)
	assert.Contains(t, out, "Embeddings:")
	assert.Contains(t, out, "handbook.txt")

	// Deleting the file cascades.
	_, err = execute(t, dir, "files", "delete", fileID)
	require.NoError(t, err)

	out, err = execute(t, dir, "documents", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents ingested yet.")
}

func TestIngestCmd_UnknownFile(t *testing.T) {
	_, err := execute(t, t.TempDir(), "ingest", "no-such-id")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestQueryCmd_NoProviderConfigured(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := execute(t, t.TempDir(), "query", "what is in my documents?")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LLM service unavailable")
}

func TestQueryCmd_Flags(t *testing.T) {
	for name, def := range map[string]string{
		"document": "",
		"top-k":    "5",
		"provider": "",
		"model":    "",
		"api-key":  "",
	} {
		flag := queryCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag %s should exist", name)
		assert.Equal(t, def, flag.DefValue, "flag %s default", name)
	}
}

func TestFilesDeleteCmd_Unknown(t *testing.T) {
	_, err := execute(t, t.TempDir(), "files", "delete", "ghost")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigSetGet_PersistsAcrossInvocations(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "config", "set", "chunking.size", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "Set chunking.size = 500")

	out, err = execute(t, dir, "config", "get", "chunking.size")
	require.NoError(t, err)
	assert.Contains(t, out, "500")
}

func TestConfigGetCmd_UnknownKey(t *testing.T) {
	_, err := execute(t, t.TempDir(), "config", "get", "no.such.key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not set")
}

func TestConfigShowCmd(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	_, err := execute(t, dir, "config", "set", "llm.api_key", "sk-secret-key-123")
	require.NoError(t, err)

	out, err := execute(t, dir, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "[Embedding]")
	assert.Contains(t, out, "Available: local, openai")
	assert.Contains(t, out, "[LLM]")
	assert.Contains(t, out, "Google Gemini (cloud)")
	assert.Contains(t, out, "Available: gemini, openai")
	assert.Contains(t, out, "[Chunking]")
	assert.Contains(t, out, "Size:    1000")

	// Keys are shown masked, never in full.
	assert.Contains(t, out, "sk-s...-123")
	assert.NotContains(t, out, "sk-secret-key-123")
}

func TestConfigPathCmd(t *testing.T) {
	out, err := execute(t, t.TempDir(), "config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
}

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "upload [path]", uploadCmd.Use)
	assert.Equal(t, "ingest [file-id]", ingestCmd.Use)
	assert.Equal(t, "query [question]", queryCmd.Use)
	assert.Equal(t, "files", filesCmd.Use)
	assert.Equal(t, "documents", documentsCmd.Use)
	assert.Equal(t, "config", configCmd.Use)
	assert.Contains(t, rootCmd.Long, "overlapping chunks")
}

// extractID pulls the first capture group out of command output.
func extractID(t *testing.T, out, pattern string) string {
	t.Helper()
	m := regexp.MustCompile(pattern).FindStringSubmatch(out)
	require.NotNil(t, m, "no match for %q in output:\n%s", pattern, out)
	return m[1]
}
