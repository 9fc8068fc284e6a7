// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for a conversion to run:
//
//   - SourceReader: Reads and decodes the input text file
//   - Packager: Writes Blocks as an OOXML (.docx) package
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TransformerPipeline: Markdown flattening. Without it, Markdown is parsed as plain text.
//   - PackageInspector: Reads a package back. Without it, inspect is disabled.
//   - FileWatcher: Change notifications. Without it, watch mode is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, transformer or ooxml package
package driven
