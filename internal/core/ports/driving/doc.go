// Package driving defines interfaces that external actors (the CLI) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
//   - ConverterService: Convert, parse and inspect documents
//   - WatchService: Reconvert on source changes
//   - SettingsService: Resolve layered configuration
//
// Implementations of these interfaces live in internal/core/services.
package driving
