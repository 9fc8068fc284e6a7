package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/md2docx/internal/core/domain"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(text string) string {
	return newlines.Replace(text)
}

// ParseBlocks classifies each non-blank line of text as a heading or a
// paragraph, in input order.
//
// Lines are trimmed before classification. A line starting with a run of
// '#' followed by whitespace (or nothing) is a heading whose level is the
// length of the run, clamped to domain.MaxHeadingLevel. Anything else,
// including "#hashtag" prose, is a paragraph with its literal text.
func ParseBlocks(text string) []domain.Block {
	lines := strings.Split(normalizeNewlines(text), "\n")
	blocks := make([]domain.Block, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, parseLine(line))
	}
	return blocks
}

func parseLine(line string) domain.Block {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 {
		return domain.NewParagraph(line)
	}

	rest := line[level:]
	if r, _ := utf8.DecodeRuneInString(rest); rest != "" && !unicode.IsSpace(r) {
		return domain.NewParagraph(line)
	}
	return domain.NewHeading(level, strings.TrimSpace(rest))
}
