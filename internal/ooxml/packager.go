package ooxml

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
	"github.com/custodia-labs/md2docx/internal/logger"
)

// Ensure Packager implements the interface.
var _ driven.Packager = (*Packager)(nil)

// stagingPrefix names scratch directories so stray ones are recognisable.
const stagingPrefix = "md2docx-"

// Packager writes Documents as .docx packages.
type Packager struct {
	scratchDir string
	now        func() time.Time
}

// Option configures a Packager.
type Option func(*Packager)

// WithScratchDir sets the directory under which staging directories are
// created. Empty means the OS temp directory.
func WithScratchDir(dir string) Option {
	return func(p *Packager) {
		p.scratchDir = dir
	}
}

// WithClock overrides the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Packager) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPackager creates a new packager.
func NewPackager(opts ...Option) *Packager {
	p := &Packager{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Write serialises doc and writes the archive to outputPath, replacing any
// existing file. It returns the size of the written archive.
//
// The parts are staged in a fresh scratch directory which is removed on
// every exit path. The archive is written beside outputPath and renamed
// into place, so a failed write never leaves a partial file behind.
func (p *Packager) Write(ctx context.Context, doc *domain.Document, outputPath string) (int64, error) {
	if doc == nil || outputPath == "" {
		return 0, domain.ErrInvalidInput
	}

	parts, err := renderParts(doc)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrWriteFailed, err)
	}

	staging, err := p.stage(parts)
	if staging != "" {
		defer func() {
			if rmErr := os.RemoveAll(staging); rmErr != nil {
				logger.Warn("failed to remove scratch directory %s: %v", staging, rmErr)
			}
		}()
	}
	if err != nil {
		return 0, fmt.Errorf("%w: staging parts: %w", domain.ErrWriteFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	modified := doc.CreatedAt
	if modified.IsZero() {
		modified = p.now()
	}

	size, err := archive(staging, parts, outputPath, modified)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrWriteFailed, outputPath, err)
	}

	logger.Debug("wrote %s (%d parts, %d bytes)", outputPath, len(parts), size)
	return size, nil
}

// stage writes every part under a new uniquely named directory and returns
// its path. The path is returned even on error so the caller can clean up.
func (p *Packager) stage(parts []part) (string, error) {
	root := p.scratchDir
	if root == "" {
		root = os.TempDir()
	}
	if err := os.MkdirAll(root, 0o700); err != nil {
		return "", err
	}

	dir := filepath.Join(root, stagingPrefix+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return "", err
	}
	logger.Debug("staging %d parts in %s", len(parts), dir)

	for _, pt := range parts {
		path := filepath.Join(dir, filepath.FromSlash(pt.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return dir, err
		}
		if err := os.WriteFile(path, pt.Data, 0o600); err != nil {
			return dir, err
		}
	}
	return dir, nil
}

// archive zips the staged parts in the given order into outputPath.
func archive(staging string, parts []part, outputPath string, modified time.Time) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	zw := zip.NewWriter(tmp)
	for _, pt := range parts {
		data, err := os.ReadFile(filepath.Join(staging, filepath.FromSlash(pt.Name)))
		if err != nil {
			return 0, err
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     pt.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return 0, err
		}
		if _, err := w.Write(data); err != nil {
			return 0, err
		}
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}

	info, err := tmp.Stat()
	if err != nil {
		return 0, err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		return 0, err
	}
	committed = true
	return info.Size(), nil
}
