package domain

import (
	"strings"
	"time"
)

// Properties are the optional core document properties
// (title, author, subject) written to docProps/core.xml.
type Properties struct {
	// Title is the document title.
	Title string

	// Author is stored as dc:creator.
	Author string

	// Subject is the document subject.
	Subject string

	// Created is the creation timestamp recorded in the package.
	Created time.Time
}

// IsZero returns true when no textual property is set.
// A zero Properties produces no core-properties part.
func (p Properties) IsZero() bool {
	return strings.TrimSpace(p.Title) == "" &&
		strings.TrimSpace(p.Author) == "" &&
		strings.TrimSpace(p.Subject) == ""
}

// Document is the in-memory content of one conversion.
// It exists only for the duration of the conversion call.
type Document struct {
	// Blocks is the flat, ordered body content.
	Blocks []Block

	// Properties are optional core properties.
	Properties Properties

	// CreatedAt is the conversion timestamp.
	CreatedAt time.Time
}

// Counts returns the number of heading and paragraph Blocks.
func (d *Document) Counts() (headings, paragraphs int) {
	if d == nil {
		return 0, 0
	}
	for _, b := range d.Blocks {
		if b.IsHeading() {
			headings++
		} else {
			paragraphs++
		}
	}
	return headings, paragraphs
}

// PackageInfo is the read-back view of a written package.
type PackageInfo struct {
	// Parts lists archive entry names in archive order.
	Parts []string

	// Blocks are the paragraphs parsed from word/document.xml.
	Blocks []Block

	// Properties are parsed from docProps/core.xml when present.
	Properties Properties
}

// HasPart returns true if the archive contains the named entry.
func (p *PackageInfo) HasPart(name string) bool {
	for _, part := range p.Parts {
		if part == name {
			return true
		}
	}
	return false
}
