// Package markdown provides the Markdown flattening stages.
//
// Each stage is a pure text-to-text Transformer. Together they reduce
// Markdown to one-block-per-line plain text that the block parser can
// classify. This is best-effort, lossy flattening and not a Markdown parser:
// tables, nested emphasis and code block contents are not reconstructed.
//
// Default order:
//
//  1. CodeBlocks: fenced code blocks become a placeholder marker
//  2. InlineCode: `code` becomes code
//  3. Links: [text](target) and ![alt](src) keep only the text
//  4. Emphasis: **bold** and *italic* keep only the inner text
//  5. Tables: pipe tables become column-padded plain text
package markdown
