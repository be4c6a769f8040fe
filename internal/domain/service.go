package domain

import (
	"context"
	"io"
)

// DatasetLoader reads and parses a quiz data file.
type DatasetLoader interface {
	// Load opens the file at path and returns the parsed dataset. Errors are
	// DomainErrors (FILE_NOT_FOUND, INVALID_JSON, INTERNAL_ERROR) or ShapeErrors.
	Load(ctx context.Context, path string) (*QuizDataset, error)
}

// QuizDataService runs a validation pass over the configured data file.
type QuizDataService interface {
	// Validate performs one run and never fails; failures are part of the Outcome.
	Validate(ctx context.Context) Outcome

	// Run validates and writes the human-readable report to w.
	Run(ctx context.Context, w io.Writer) Outcome
}
