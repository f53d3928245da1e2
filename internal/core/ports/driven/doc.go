// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FileStore: Uploaded file persistence
//   - DocumentStore: Document and embedding persistence
//   - EmbeddingService: Vector generation for text chunks
//   - LLMService: Generative answer synthesis
//   - TextExtractor: Raw bytes to plain text conversion
//
// # Optional Interfaces
//
//   - ConfigStore: Application configuration
//   - PromptStore: User-customisable prompt templates
package driven
