package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/md2docx/internal/adapters/driven/source/filesystem"
	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/ooxml"
	"github.com/custodia-labs/md2docx/internal/transformers"
)

func TestNewConverterService(t *testing.T) {
	service := NewConverterService(&mockReader{}, nil, &mockPackager{}, nil)

	require.NotNil(t, service)
	assert.NotNil(t, service.now)
}

func TestConverterService_Convert_Success(t *testing.T) {
	reader := &mockReader{text: "# Title\n\nBody text.\n## Section\nMore text."}
	packager := &mockPackager{size: 1234}
	service := NewConverterService(reader, nil, packager, nil)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	result, err := service.Convert(context.Background(), domain.ConvertRequest{
		InputPath:  "in.txt",
		OutputPath: "out.docx",
		Properties: domain.Properties{Title: "T"},
	})

	require.NoError(t, err)
	assert.Equal(t, &domain.ConvertResult{
		OutputPath: "out.docx",
		Format:     domain.FormatText,
		Blocks:     4,
		Headings:   2,
		Paragraphs: 2,
		Bytes:      1234,
	}, result)

	assert.Equal(t, []string{"in.txt"}, reader.paths)
	assert.Equal(t, "out.docx", packager.path)
	require.NotNil(t, packager.doc)
	assert.Equal(t, "T", packager.doc.Properties.Title)
	assert.Equal(t, fixed, packager.doc.CreatedAt)
	assert.Equal(t, []domain.Block{
		domain.NewHeading(1, "Title"),
		domain.NewParagraph("Body text."),
		domain.NewHeading(2, "Section"),
		domain.NewParagraph("More text."),
	}, packager.doc.Blocks)
}

func TestConverterService_Convert_PipelineByFormat(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		format    domain.SourceFormat
		wantCalls int
		want      domain.SourceFormat
	}{
		{"auto markdown extension", "notes.md", domain.FormatAuto, 1, domain.FormatMarkdown},
		{"auto text extension", "notes.txt", domain.FormatAuto, 0, domain.FormatText},
		{"explicit markdown", "notes.txt", domain.FormatMarkdown, 1, domain.FormatMarkdown},
		{"explicit text", "notes.md", domain.FormatText, 0, domain.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := &mockPipeline{}
			service := NewConverterService(&mockReader{text: "x"}, pipeline, &mockPackager{}, nil)

			result, err := service.Convert(context.Background(), domain.ConvertRequest{
				InputPath:  tt.input,
				OutputPath: "out.docx",
				Format:     tt.format,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, pipeline.calls)
			assert.Equal(t, tt.want, result.Format)
		})
	}
}

func TestConverterService_Convert_MissingInput(t *testing.T) {
	packager := &mockPackager{}
	reader := &mockReader{err: domain.ErrMissingInput}
	service := NewConverterService(reader, nil, packager, nil)

	_, err := service.Convert(context.Background(), domain.ConvertRequest{InputPath: "a.md", OutputPath: "a.docx"})

	assert.ErrorIs(t, err, domain.ErrMissingInput)
	assert.Nil(t, packager.doc, "packager must not run without input")
}

func TestConverterService_Convert_WriteFailed(t *testing.T) {
	packager := &mockPackager{err: domain.ErrWriteFailed}
	service := NewConverterService(&mockReader{text: "x"}, nil, packager, nil)

	_, err := service.Convert(context.Background(), domain.ConvertRequest{InputPath: "a.txt", OutputPath: "a.docx"})

	assert.ErrorIs(t, err, domain.ErrWriteFailed)
}

func TestConverterService_Convert_PipelineError(t *testing.T) {
	boom := errors.New("boom")
	packager := &mockPackager{}
	service := NewConverterService(&mockReader{text: "x"}, &mockPipeline{err: boom}, packager, nil)

	_, err := service.Convert(context.Background(), domain.ConvertRequest{InputPath: "a.md", OutputPath: "a.docx"})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, packager.doc)
}

func TestConverterService_Convert_InvalidRequest(t *testing.T) {
	service := NewConverterService(&mockReader{}, nil, &mockPackager{}, nil)

	_, err := service.Convert(context.Background(), domain.ConvertRequest{OutputPath: "a.docx"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Convert(context.Background(), domain.ConvertRequest{InputPath: "a.md"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConverterService_Convert_NotConfigured(t *testing.T) {
	service := NewConverterService(nil, nil, nil, nil)

	_, err := service.Convert(context.Background(), domain.ConvertRequest{InputPath: "a.md", OutputPath: "a.docx"})

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestConverterService_Parse(t *testing.T) {
	pipeline := &mockPipeline{fn: strings.ToUpper}
	service := NewConverterService(nil, pipeline, nil, nil)
	ctx := context.Background()

	t.Run("markdown runs the pipeline", func(t *testing.T) {
		blocks, err := service.Parse(ctx, "# title", domain.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, []domain.Block{domain.NewHeading(1, "TITLE")}, blocks)
	})

	t.Run("auto parses as text", func(t *testing.T) {
		blocks, err := service.Parse(ctx, "# title", domain.FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, []domain.Block{domain.NewHeading(1, "title")}, blocks)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := service.Parse(ctx, "x", domain.SourceFormat("rst"))
		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := service.Parse(cctx, "x", domain.FormatText)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConverterService_Inspect(t *testing.T) {
	t.Run("delegates to inspector", func(t *testing.T) {
		info := &domain.PackageInfo{Parts: []string{ooxml.DocumentPart}}
		service := NewConverterService(nil, nil, nil, &mockInspector{info: info})

		got, err := service.Inspect(context.Background(), "a.docx")
		require.NoError(t, err)
		assert.Same(t, info, got)
	})

	t.Run("empty path", func(t *testing.T) {
		service := NewConverterService(nil, nil, nil, &mockInspector{})
		_, err := service.Inspect(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("no inspector", func(t *testing.T) {
		service := NewConverterService(nil, nil, nil, nil)
		_, err := service.Inspect(context.Background(), "a.docx")
		assert.ErrorIs(t, err, domain.ErrNotImplemented)
	})
}

// TestConverterService_EndToEnd wires the real adapters together.
func TestConverterService_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "INTERCONNECT_要件定義書.md")
	output := filepath.Join(dir, "INTERCONNECT_要件定義書.docx")

	markdown := "# **INTERCONNECT** 要件定義書\n" +
		"\n" +
		"See [the docs](https://example.com) & run `make`.\n" +
		"\n" +
		"```go\nfunc main() {}\n```\n" +
		"\n" +
		"## 機能\n" +
		"| 項目 | 説明 |\n" +
		"|------|------|\n" +
		"| ID | 識別子 |\n" +
		"#### Deep <heading>\n"
	require.NoError(t, os.WriteFile(input, []byte(markdown), 0o644))

	reader, err := filesystem.NewReader("utf-8")
	require.NoError(t, err)
	pipeline, err := transformers.NewDefaultRegistry().BuildPipeline(domain.DefaultTransformStages(), nil)
	require.NoError(t, err)

	scratch := t.TempDir()
	service := NewConverterService(
		reader,
		pipeline,
		ooxml.NewPackager(ooxml.WithScratchDir(scratch)),
		ooxml.NewInspector(),
	)

	result, err := service.Convert(context.Background(), domain.ConvertRequest{
		InputPath:  input,
		OutputPath: output,
	})
	require.NoError(t, err)
	assert.Equal(t, output, result.OutputPath)
	assert.Equal(t, domain.FormatMarkdown, result.Format)
	assert.Equal(t, 7, result.Blocks)
	assert.Equal(t, 3, result.Headings)

	info, err := service.Inspect(context.Background(), output)
	require.NoError(t, err)
	assert.Equal(t, []string{ooxml.ContentTypesPart, ooxml.RelationshipsPart, ooxml.DocumentPart}, info.Parts)
	assert.Equal(t, []domain.Block{
		domain.NewHeading(1, "INTERCONNECT 要件定義書"),
		domain.NewParagraph("See the docs & run make."),
		domain.NewParagraph(domain.DefaultCodeBlockPlaceholder),
		domain.NewHeading(2, "機能"),
		domain.NewParagraph("項目 | 説明"),
		domain.NewParagraph("ID   | 識別子"),
		domain.NewHeading(3, "Deep <heading>"),
	}, info.Blocks)

	entries, err := os.ReadDir(scratch)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
