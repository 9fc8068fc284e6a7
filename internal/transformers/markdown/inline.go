package markdown

import (
	"context"
	"regexp"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
)

var (
	_ driven.Transformer = (*InlineCode)(nil)
	_ driven.Transformer = (*Links)(nil)
	_ driven.Transformer = (*Emphasis)(nil)
)

var (
	inlineCode = regexp.MustCompile("`([^`\n]+)`")

	// Image syntax shares the link pattern with a leading "!".
	link = regexp.MustCompile(`!?\[([^\]\n]*)\]\([^)\n]*\)`)

	// The opening marker must touch a non-space character so list bullets
	// ("* item") and rules ("***") are left alone.
	strong   = regexp.MustCompile(`\*\*([^*\s][^*\n]*?)\*\*`)
	emphasis = regexp.MustCompile(`\*([^*\s][^*\n]*?)\*`)
)

// InlineCode strips backticks from inline code spans, keeping the inner text.
type InlineCode struct{}

// NewInlineCode creates an inline code stage.
func NewInlineCode() *InlineCode {
	return &InlineCode{}
}

// Name returns the stage name.
func (s *InlineCode) Name() string {
	return domain.StageInlineCode
}

// Transform strips inline code markers.
func (s *InlineCode) Transform(_ context.Context, text string) (string, error) {
	return inlineCode.ReplaceAllString(text, "$1"), nil
}

// Links keeps link and image text, discarding targets.
type Links struct{}

// NewLinks creates a link stage.
func NewLinks() *Links {
	return &Links{}
}

// Name returns the stage name.
func (s *Links) Name() string {
	return domain.StageLinks
}

// Transform replaces [text](target) with text.
func (s *Links) Transform(_ context.Context, text string) (string, error) {
	return link.ReplaceAllString(text, "$1"), nil
}

// Emphasis strips bold and italic asterisk markers, keeping the inner text.
type Emphasis struct{}

// NewEmphasis creates an emphasis stage.
func NewEmphasis() *Emphasis {
	return &Emphasis{}
}

// Name returns the stage name.
func (s *Emphasis) Name() string {
	return domain.StageEmphasis
}

// Transform strips **bold** first, then *italic*. Markers never span lines.
func (s *Emphasis) Transform(_ context.Context, text string) (string, error) {
	text = strong.ReplaceAllString(text, "$1")
	return emphasis.ReplaceAllString(text, "$1"), nil
}
