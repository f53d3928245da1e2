// Package pdf provides a text extractor for PDF files.
//
// Extraction shells out to the poppler pdftotext tool through a mockable
// CommandRunner, keeping the binary free of PDF parsing code.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner runs an external command and returns its stdout.
// It exists so tests can stub out pdftotext.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor converts PDF bytes to plain text via pdftotext.
type Extractor struct {
	runner CommandRunner
}

// New creates a new PDF extractor using the real pdftotext binary.
func New() *Extractor {
	return &Extractor{runner: execRunner{}}
}

// NewWithRunner creates a PDF extractor with a custom command runner.
func NewWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Extract converts the PDF bytes to plain text.
// The bytes are written to a temporary file because pdftotext does not
// read PDF input from stdin reliably across versions.
func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	if _, isExec := e.runner.(execRunner); isExec {
		if err := CheckAvailable(); err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrExtraction, err)
		}
	}

	tmpDir, err := os.MkdirTemp("", "parchment-pdf-")
	if err != nil {
		return "", fmt.Errorf("%w: create temp dir: %w", domain.ErrExtraction, err)
	}
	defer os.RemoveAll(tmpDir)

	tmpFile := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return "", fmt.Errorf("%w: write temp file: %w", domain.ErrExtraction, err)
	}

	// "-" sends the extracted text to stdout.
	output, err := e.runner.Run(ctx, "pdftotext", "-layout", tmpFile, "-")
	if err != nil {
		return "", fmt.Errorf("%w: pdftotext: %w", domain.ErrExtraction, err)
	}

	text := string(output)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content in PDF", domain.ErrExtraction)
	}

	return text, nil
}

// CheckAvailable reports whether pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns guidance for installing pdftotext.
func InstallInstructions() string {
	return `PDF extraction requires the pdftotext tool (part of poppler):

  macOS:         brew install poppler
  Debian/Ubuntu: sudo apt install poppler-utils
  Fedora:        sudo dnf install poppler-utils`
}
