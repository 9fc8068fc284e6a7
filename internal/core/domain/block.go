package domain

import "strconv"

// Heading levels supported by the packager.
// Deeper Markdown headings are clamped to MaxHeadingLevel.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 3
)

// BlockKind distinguishes headings from plain paragraphs.
type BlockKind int

const (
	// BlockParagraph is a plain paragraph.
	BlockParagraph BlockKind = iota

	// BlockHeading is a heading with a level in [MinHeadingLevel, MaxHeadingLevel].
	BlockHeading
)

// String returns the string representation.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	default:
		return "unknown"
	}
}

// Block is one unit of document content derived from one input line.
// Every Block becomes exactly one paragraph node in the output package.
type Block struct {
	// Kind is heading or paragraph.
	Kind BlockKind

	// Level is the heading level. Zero for paragraphs.
	Level int

	// Text is the literal content, unescaped.
	Text string
}

// NewHeading creates a heading Block, clamping level into range.
func NewHeading(level int, text string) Block {
	return Block{
		Kind:  BlockHeading,
		Level: ClampHeadingLevel(level),
		Text:  text,
	}
}

// NewParagraph creates a paragraph Block.
func NewParagraph(text string) Block {
	return Block{
		Kind: BlockParagraph,
		Text: text,
	}
}

// ClampHeadingLevel forces level into [MinHeadingLevel, MaxHeadingLevel].
func ClampHeadingLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}

// IsHeading returns true for heading Blocks.
func (b Block) IsHeading() bool {
	return b.Kind == BlockHeading
}

// StyleID returns the paragraph style referenced by the Block,
// e.g. "Heading2". Paragraphs have no style.
func (b Block) StyleID() string {
	if !b.IsHeading() {
		return ""
	}
	return "Heading" + strconv.Itoa(ClampHeadingLevel(b.Level))
}

// String returns a compact debug form such as `Heading(2,"Scope")`.
func (b Block) String() string {
	if b.IsHeading() {
		return "Heading(" + strconv.Itoa(b.Level) + "," + strconv.Quote(b.Text) + ")"
	}
	return "Paragraph(" + strconv.Quote(b.Text) + ")"
}
