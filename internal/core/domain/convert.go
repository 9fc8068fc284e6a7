package domain

// ConvertRequest describes one conversion call.
type ConvertRequest struct {
	// InputPath is the Markdown or plain text source.
	InputPath string

	// OutputPath is where the .docx package is written.
	OutputPath string

	// Format selects whether Markdown flattening runs.
	// FormatAuto resolves from the input file extension.
	Format SourceFormat

	// Properties are optional core document properties.
	Properties Properties
}

// ConvertResult reports the outcome of a successful conversion.
type ConvertResult struct {
	// OutputPath is the written package path.
	OutputPath string

	// Format is the resolved source format.
	Format SourceFormat

	// Blocks is the total number of paragraph nodes written.
	Blocks int

	// Headings is the number of heading Blocks.
	Headings int

	// Paragraphs is the number of plain paragraph Blocks.
	Paragraphs int

	// Bytes is the size of the written archive.
	Bytes int64
}
