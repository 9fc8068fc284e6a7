package domain

import "time"

// Default paths are relative to the working directory.
const (
	DefaultInputPath  = "INTERCONNECT_要件定義書.md"
	DefaultOutputPath = "INTERCONNECT_要件定義書.docx"
)

// DefaultEncoding is the source text encoding when none is configured.
const DefaultEncoding = "utf-8"

// DefaultCodeBlockPlaceholder replaces fenced code blocks during flattening.
const DefaultCodeBlockPlaceholder = "[コードブロック]"

// DefaultWatchDebounce is how long watch mode waits for further writes.
const DefaultWatchDebounce = 500 * time.Millisecond

// Transformer stage names, in default pipeline order.
const (
	StageCodeBlocks = "code_blocks"
	StageInlineCode = "inline_code"
	StageLinks      = "links"
	StageEmphasis   = "emphasis"
	StageTables     = "tables"
)

// DefaultTransformStages returns the default Markdown flattening order.
func DefaultTransformStages() []string {
	return []string{
		StageCodeBlocks,
		StageInlineCode,
		StageLinks,
		StageEmphasis,
		StageTables,
	}
}

// Settings is the resolved application configuration.
type Settings struct {
	// InputPath is the source file.
	InputPath string

	// OutputPath is the destination package.
	OutputPath string

	// Format selects Markdown flattening.
	Format SourceFormat

	// Encoding is the source text encoding name (e.g. "utf-8", "shift_jis").
	Encoding string

	// ScratchDir is the parent for staging directories. Empty means os.TempDir.
	ScratchDir string

	// Properties are optional core document properties.
	Properties Properties

	// Transform configures the Markdown flattening pipeline.
	Transform TransformSettings

	// Watch configures watch mode.
	Watch WatchSettings
}

// TransformSettings configures the flattening pipeline.
type TransformSettings struct {
	// Stages lists transformer names in execution order.
	Stages []string

	// CodeBlockPlaceholder replaces each fenced code block.
	CodeBlockPlaceholder string
}

// WatchSettings configures watch mode.
type WatchSettings struct {
	// Debounce is the quiet period before a change triggers a conversion.
	Debounce time.Duration
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Format:     FormatAuto,
		Encoding:   DefaultEncoding,
		Transform: TransformSettings{
			Stages:               DefaultTransformStages(),
			CodeBlockPlaceholder: DefaultCodeBlockPlaceholder,
		},
		Watch: WatchSettings{
			Debounce: DefaultWatchDebounce,
		},
	}
}

// Request builds a ConvertRequest from the settings.
func (s Settings) Request() ConvertRequest {
	return ConvertRequest{
		InputPath:  s.InputPath,
		OutputPath: s.OutputPath,
		Format:     s.Format,
		Properties: s.Properties,
	}
}
