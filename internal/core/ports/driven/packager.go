package driven

import (
	"context"

	"github.com/custodia-labs/md2docx/internal/core/domain"
)

// Packager serialises a Document as an OOXML package.
type Packager interface {
	// Write packages doc to outputPath and returns the archive size.
	// On failure no file is left at outputPath and the error wraps
	// domain.ErrWriteFailed.
	Write(ctx context.Context, doc *domain.Document, outputPath string) (int64, error)
}

// PackageInspector reads a written package back.
type PackageInspector interface {
	// Inspect lists the parts of the package at path and parses its body.
	Inspect(ctx context.Context, path string) (*domain.PackageInfo, error)
}
