package transformers

import (
	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
	"github.com/custodia-labs/md2docx/internal/transformers/markdown"
)

// Config keys understood by the built-in stages.
const (
	ConfigCodeBlockPlaceholder = "code_block_placeholder"
	ConfigTableSeparator       = "table_separator"
)

// RegisterDefaults registers all built-in stages with the registry.
// Call this during application initialisation to enable Markdown flattening.
func RegisterDefaults(r *Registry) {
	r.Register(domain.StageCodeBlocks, buildCodeBlocks)
	r.Register(domain.StageInlineCode, func(map[string]any) (driven.Transformer, error) {
		return markdown.NewInlineCode(), nil
	})
	r.Register(domain.StageLinks, func(map[string]any) (driven.Transformer, error) {
		return markdown.NewLinks(), nil
	})
	r.Register(domain.StageEmphasis, func(map[string]any) (driven.Transformer, error) {
		return markdown.NewEmphasis(), nil
	})
	r.Register(domain.StageTables, buildTables)
}

// NewDefaultRegistry returns a registry with the built-in stages registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// buildCodeBlocks creates a code block stage from generic config.
// Supported config keys:
//   - code_block_placeholder (string): Marker replacing each fenced block
//     (default: "[コードブロック]"). Present-but-empty removes blocks.
func buildCodeBlocks(cfg map[string]any) (driven.Transformer, error) {
	var opts []markdown.CodeBlocksOption
	if placeholder, ok := getStringFromConfig(cfg, ConfigCodeBlockPlaceholder); ok {
		opts = append(opts, markdown.WithPlaceholder(placeholder))
	}
	return markdown.NewCodeBlocks(opts...), nil
}

// buildTables creates a table stage from generic config.
// Supported config keys:
//   - table_separator (string): Text between padded cells (default: " | ")
func buildTables(cfg map[string]any) (driven.Transformer, error) {
	var opts []markdown.TablesOption
	if sep, ok := getStringFromConfig(cfg, ConfigTableSeparator); ok {
		opts = append(opts, markdown.WithSeparator(sep))
	}
	return markdown.NewTables(opts...), nil
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) (string, bool) {
	val, ok := cfg[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}
