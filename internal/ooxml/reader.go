package ooxml

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.PackageInspector = (*Inspector)(nil)

// Inspector reads written packages back into a PackageInfo.
type Inspector struct{}

// NewInspector creates a new package inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect opens the .docx at path and lists its parts, paragraphs and
// core properties.
func (i *Inspector) Inspect(ctx context.Context, path string) (*domain.PackageInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, path, err)
	}
	defer zr.Close()

	return ReadPackage(&zr.Reader)
}

// ReadPackage builds a PackageInfo from an open archive.
// The archive must contain word/document.xml.
func ReadPackage(reader *zip.Reader) (*domain.PackageInfo, error) {
	info := &domain.PackageInfo{
		Parts: make([]string, 0, len(reader.File)),
	}
	var documentFound bool

	for _, file := range reader.File {
		info.Parts = append(info.Parts, file.Name)

		switch file.Name {
		case DocumentPart:
			content, err := readFile(file)
			if err != nil {
				return nil, err
			}
			blocks, err := parseDocument(content)
			if err != nil {
				return nil, err
			}
			info.Blocks = blocks
			documentFound = true
		case CorePropertiesPart:
			content, err := readFile(file)
			if err != nil {
				return nil, err
			}
			props, err := parseCoreProperties(content)
			if err != nil {
				return nil, err
			}
			info.Properties = props
		}
	}

	if !documentFound {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, DocumentPart)
	}
	return info, nil
}

func readFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, file.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, file.Name, err)
	}
	return content, nil
}

// coreXML is the read side of docProps/core.xml.
type coreXML struct {
	Title   string `xml:"title"`
	Subject string `xml:"subject"`
	Creator string `xml:"creator"`
	Created string `xml:"created"`
}

func parseCoreProperties(content []byte) (domain.Properties, error) {
	var core coreXML
	if err := xml.Unmarshal(content, &core); err != nil {
		return domain.Properties{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, CorePropertiesPart, err)
	}

	props := domain.Properties{
		Title:   strings.TrimSpace(core.Title),
		Author:  strings.TrimSpace(core.Creator),
		Subject: strings.TrimSpace(core.Subject),
	}
	if created, err := time.Parse(time.RFC3339, strings.TrimSpace(core.Created)); err == nil {
		props.Created = created
	}
	return props, nil
}
