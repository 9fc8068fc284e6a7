package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
)

// Ensure Tables implements the interface.
var _ driven.Transformer = (*Tables)(nil)

// DefaultCellSeparator joins padded cells.
const DefaultCellSeparator = " | "

// escapedPipe stands in for "\|" while cells are split.
const escapedPipe = "\x00"

var delimiterCell = regexp.MustCompile(`^:?-+:?$`)

// Tables flattens pipe tables into column-padded plain text lines.
// The delimiter row is dropped; each remaining row stays one line so it
// becomes one paragraph.
type Tables struct {
	separator string
}

// TablesOption configures the Tables stage.
type TablesOption func(*Tables)

// WithSeparator sets the string placed between padded cells.
func WithSeparator(sep string) TablesOption {
	return func(t *Tables) {
		if sep != "" {
			t.separator = sep
		}
	}
}

// NewTables creates a table stage.
func NewTables(opts ...TablesOption) *Tables {
	t := &Tables{separator: DefaultCellSeparator}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the stage name.
func (t *Tables) Name() string {
	return domain.StageTables
}

// Transform rewrites every table block and leaves other lines untouched.
func (t *Tables) Transform(_ context.Context, text string) (string, error) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		end := tableEnd(lines, i)
		if end == i {
			out = append(out, lines[i])
			i++
			continue
		}
		out = append(out, t.render(lines[i:end])...)
		i = end
	}

	return strings.Join(out, "\n"), nil
}

// tableEnd returns the index after the table starting at start,
// or start if no table starts there.
func tableEnd(lines []string, start int) int {
	first := strings.TrimSpace(lines[start])
	if !strings.Contains(first, "|") {
		return start
	}

	// A leading pipe always starts a table; otherwise a delimiter row must
	// follow the header.
	leading := strings.HasPrefix(first, "|")
	if !leading && (start+1 >= len(lines) || !isDelimiterRow(splitCells(lines[start+1]))) {
		return start
	}

	end := start + 1
	for end < len(lines) {
		line := strings.TrimSpace(lines[end])
		if line == "" || !strings.Contains(line, "|") {
			break
		}
		if leading && !strings.HasPrefix(line, "|") {
			break
		}
		end++
	}
	return end
}

func (t *Tables) render(rows []string) []string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		c := splitCells(row)
		if isDelimiterRow(c) {
			continue
		}
		cells = append(cells, c)
	}

	widths := columnWidths(cells)
	out := make([]string, 0, len(cells))
	for _, row := range cells {
		padded := make([]string, len(row))
		for col, cell := range row {
			padded[col] = runewidth.FillRight(cell, widths[col])
		}
		out = append(out, strings.TrimRight(strings.Join(padded, t.separator), " "))
	}
	return out
}

// columnWidths returns the display width of the widest cell per column.
// Wide (CJK) characters count as two columns.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for col, cell := range row {
			if col >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths
}

// splitCells splits a table row on unescaped pipes and trims each cell.
func splitCells(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.ReplaceAll(row, `\|`, escapedPipe)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")

	parts := strings.Split(row, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(strings.ReplaceAll(p, escapedPipe, "|"))
	}
	return cells
}

// isDelimiterRow reports whether cells form a header delimiter such as |---|:--:|.
func isDelimiterRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !delimiterCell.MatchString(c) {
			return false
		}
	}
	return true
}
