// Package ooxml writes and reads minimal WordprocessingML (.docx) packages.
//
// A package is a ZIP archive following the Open Packaging Conventions.
// The packager emits exactly three parts:
//
//   - [Content_Types].xml: MIME types for package entries
//   - _rels/.rels: the package relationship to the main document
//   - word/document.xml: one w:p per Block, headings styled HeadingN
//
// plus docProps/core.xml when core properties are set.
//
// All XML is produced with encoding/xml so reserved characters in user text
// are always escaped. Parts are staged in a uniquely named scratch directory
// that is removed when Write returns, and the archive is renamed into place
// only after it has been fully written.
package ooxml
