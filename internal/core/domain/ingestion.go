package domain

// IngestionStage identifies a step of the ingestion pipeline.
// Stages advance strictly in order; the pipeline ends in either
// StageCompleted or StageFailed.
type IngestionStage string

// Ingestion pipeline stages.
const (
	StageStarted         IngestionStage = "started"
	StageCleaning        IngestionStage = "cleaning"
	StageChunking        IngestionStage = "chunking"
	StageEmbeddingChunks IngestionStage = "embedding_chunks"
	StageVerifying       IngestionStage = "verifying"
	StageCompleted       IngestionStage = "completed"
	StageFailed          IngestionStage = "failed"
)

// IngestionReport summarises an ingestion run for observability.
type IngestionReport struct {
	// DocumentID is the created document, set once the cleaning stage
	// has passed. It is present even when the run ends in failure.
	DocumentID string

	// Embedded counts chunks that were embedded and persisted.
	Embedded int

	// Skipped counts chunks discarded for carrying too little text.
	Skipped int

	// Failed counts chunks whose embedding or persistence failed.
	Failed int

	// Stage is the stage the pipeline finished in.
	Stage IngestionStage
}
