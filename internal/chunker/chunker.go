// Package chunker splits cleaned document text into overlapping
// fixed-size windows.
package chunker

import "strings"

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// MinChunkLength is the minimum trimmed length a chunk must have to be
// worth embedding; shorter chunks carry too little semantic signal.
const MinChunkLength = 50

// Chunker splits text into fixed-size chunks with overlap so context
// isn't lost at chunk boundaries.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// ChunkSize returns the configured chunk size.
func (c *Chunker) ChunkSize() int {
	return c.chunkSize
}

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int {
	return c.overlap
}

// Split returns the ordered sequence of chunks for text.
//
// Starting at offset 0 it emits text[offset : offset+chunkSize] clamped to
// the text length and advances by chunkSize-overlap, so consecutive chunks
// share exactly overlap characters except possibly the last. Empty text
// produces no chunks; text no longer than one chunk produces exactly one.
func (c *Chunker) Split(text string) []string {
	if text == "" {
		return nil
	}

	textLen := len(text)
	step := c.chunkSize - c.overlap

	chunks := make([]string, 0, textLen/step+1)
	for start := 0; start < textLen; start += step {
		end := start + c.chunkSize
		if end > textLen {
			end = textLen
		}
		chunks = append(chunks, text[start:end])
		if end == textLen {
			break
		}
	}

	return chunks
}

// TooShort reports whether a chunk should be skipped before embedding.
func TooShort(chunk string) bool {
	return len(strings.TrimSpace(chunk)) < MinChunkLength
}
