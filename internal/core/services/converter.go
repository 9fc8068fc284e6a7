package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
	"github.com/custodia-labs/md2docx/internal/core/ports/driving"
	"github.com/custodia-labs/md2docx/internal/logger"
)

// Ensure ConverterService implements the interface.
var _ driving.ConverterService = (*ConverterService)(nil)

// ConverterService reads a source file, flattens Markdown, classifies lines
// into Blocks and hands the Document to the packager.
type ConverterService struct {
	reader    driven.SourceReader
	pipeline  driven.TransformerPipeline
	packager  driven.Packager
	inspector driven.PackageInspector
	now       func() time.Time
}

// NewConverterService creates a new converter service.
// pipeline and inspector may be nil.
func NewConverterService(
	reader driven.SourceReader,
	pipeline driven.TransformerPipeline,
	packager driven.Packager,
	inspector driven.PackageInspector,
) *ConverterService {
	return &ConverterService{
		reader:    reader,
		pipeline:  pipeline,
		packager:  packager,
		inspector: inspector,
		now:       time.Now,
	}
}

// Convert runs one conversion from req.InputPath to req.OutputPath.
func (s *ConverterService) Convert(ctx context.Context, req domain.ConvertRequest) (*domain.ConvertResult, error) {
	if req.InputPath == "" || req.OutputPath == "" {
		return nil, fmt.Errorf("%w: input and output paths are required", domain.ErrInvalidInput)
	}
	if s.reader == nil || s.packager == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Convert")
	logger.Info("%s -> %s", req.InputPath, req.OutputPath)

	text, err := s.reader.Read(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	format := req.Format.Resolve(req.InputPath)
	blocks, err := s.Parse(ctx, text, format)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		Blocks:     blocks,
		Properties: req.Properties,
		CreatedAt:  s.now(),
	}

	size, err := s.packager.Write(ctx, doc, req.OutputPath)
	if err != nil {
		return nil, err
	}

	headings, paragraphs := doc.Counts()
	logger.Info("wrote %d blocks (%d headings, %d paragraphs)", len(blocks), headings, paragraphs)

	return &domain.ConvertResult{
		OutputPath: req.OutputPath,
		Format:     format,
		Blocks:     len(blocks),
		Headings:   headings,
		Paragraphs: paragraphs,
		Bytes:      size,
	}, nil
}

// Parse classifies text into Blocks. Markdown is flattened first when a
// pipeline is configured. FormatAuto is treated as plain text because
// there is no path to infer from.
func (s *ConverterService) Parse(ctx context.Context, text string, format domain.SourceFormat) ([]domain.Block, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: format %q", domain.ErrUnsupportedType, format)
	}

	text = normalizeNewlines(text)
	if format == domain.FormatMarkdown && s.pipeline != nil {
		flattened, err := s.pipeline.Transform(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to flatten markdown: %w", err)
		}
		text = flattened
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks := ParseBlocks(text)
	logger.Debug("parsed %d blocks (%s)", len(blocks), format.Resolve(""))
	return blocks, nil
}

// Inspect reads a written package back.
func (s *ConverterService) Inspect(ctx context.Context, path string) (*domain.PackageInfo, error) {
	if s.inspector == nil {
		return nil, domain.ErrNotImplemented
	}
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	return s.inspector.Inspect(ctx, path)
}
