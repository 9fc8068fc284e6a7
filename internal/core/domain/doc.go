// Package domain defines the core entities for md2docx.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Block: A heading or paragraph derived from one input line
//   - Document: The ordered Blocks plus optional document properties
//   - ConvertRequest / ConvertResult: One conversion call and its outcome
//   - PackageInfo: The read-back view of a written .docx package
//   - Settings: Resolved application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
