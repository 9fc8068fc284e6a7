// Package filesystem reads conversion input from the local filesystem.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
	"github.com/custodia-labs/md2docx/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.SourceReader = (*Reader)(nil)

// Reader loads a text file, decodes it to UTF-8 and normalises it to NFC.
type Reader struct {
	encoding encoding.Encoding
	name     string
}

// NewReader creates a reader for the named encoding, e.g. "utf-8",
// "shift_jis", "euc-jp" or "utf-16le". Empty means UTF-8.
// A byte order mark in the input always takes precedence.
func NewReader(encodingName string) (*Reader, error) {
	if encodingName == "" {
		encodingName = domain.DefaultEncoding
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %q", domain.ErrUnsupportedType, encodingName)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		name = encodingName
	}

	return &Reader{encoding: enc, name: name}, nil
}

// Encoding returns the canonical name of the configured encoding.
func (r *Reader) Encoding() string {
	return r.name
}

// Read returns the decoded content of path.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("%w: empty input path", domain.ErrInvalidInput)
	}

	path = ResolvePath(path)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(r.encoding.NewDecoder())
	content, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as %s: %w", path, r.name, err)
	}

	logger.Debug("read %s (%d bytes, %s)", path, info.Size(), r.name)
	return norm.NFC.String(string(content)), nil
}
