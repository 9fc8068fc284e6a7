package markdown

import (
	"context"
	"regexp"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
)

// Ensure CodeBlocks implements the interface.
var _ driven.Transformer = (*CodeBlocks)(nil)

// fencedCode matches a ``` fence through the next closing fence.
var fencedCode = regexp.MustCompile("(?s)```.*?```")

// CodeBlocks replaces fenced code blocks with a placeholder marker.
type CodeBlocks struct {
	placeholder string
}

// CodeBlocksOption configures the CodeBlocks stage.
type CodeBlocksOption func(*CodeBlocks)

// WithPlaceholder sets the marker that replaces each code block.
// An empty placeholder removes code blocks entirely.
func WithPlaceholder(placeholder string) CodeBlocksOption {
	return func(c *CodeBlocks) {
		c.placeholder = placeholder
	}
}

// NewCodeBlocks creates a code block stage.
func NewCodeBlocks(opts ...CodeBlocksOption) *CodeBlocks {
	c := &CodeBlocks{
		placeholder: domain.DefaultCodeBlockPlaceholder,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the stage name.
func (c *CodeBlocks) Name() string {
	return domain.StageCodeBlocks
}

// Placeholder returns the configured marker.
func (c *CodeBlocks) Placeholder() string {
	return c.placeholder
}

// Transform replaces every closed fence. Unclosed fences are left as-is.
func (c *CodeBlocks) Transform(_ context.Context, text string) (string, error) {
	return fencedCode.ReplaceAllLiteralString(text, c.placeholder), nil
}
