package driving

import (
	"context"

	"github.com/custodia-labs/md2docx/internal/core/domain"
)

// ConverterService turns text documents into .docx packages.
type ConverterService interface {
	// Convert reads the request input, flattens Markdown when applicable,
	// parses Blocks and writes the package.
	Convert(ctx context.Context, req domain.ConvertRequest) (*domain.ConvertResult, error)

	// Parse flattens (for Markdown) and classifies text into Blocks
	// without writing anything.
	Parse(ctx context.Context, text string, format domain.SourceFormat) ([]domain.Block, error)

	// Inspect reads a written package back.
	Inspect(ctx context.Context, path string) (*domain.PackageInfo, error)
}

// WatchService re-runs conversions when the input changes.
type WatchService interface {
	// Watch converts once, then again after every change to req.InputPath,
	// until ctx is cancelled. Each outcome is passed to report.
	Watch(ctx context.Context, req domain.ConvertRequest, report func(*domain.ConvertResult, error)) error
}
