package driving

import "context"

// QueryService answers natural-language questions, optionally grounded
// in ingested document content.
type QueryService interface {
	// Answer synthesises an answer for the query.
	//
	// Context selection, in order of precedence:
	//   - opts.DocumentID set: the whole cleaned content of that document
	//     is supplied as context.
	//   - opts.TopK > 0: the query is embedded and the best-scoring stored
	//     chunks are concatenated as context.
	//   - neither: the query goes to the provider without context.
	Answer(ctx context.Context, query string, opts QueryOptions) (string, error)
}

// QueryOptions configures answer synthesis.
type QueryOptions struct {
	// DocumentID selects one document whose full content is the context.
	DocumentID string

	// TopK enables retrieval: the number of best-matching chunks to
	// concatenate as context. Ignored when DocumentID is set.
	TopK int
}
