package ooxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/custodia-labs/md2docx/internal/core/domain"
)

// Archive entry names.
const (
	ContentTypesPart   = "[Content_Types].xml"
	RelationshipsPart  = "_rels/.rels"
	DocumentPart       = "word/document.xml"
	CorePropertiesPart = "docProps/core.xml"
)

// XML namespaces.
const (
	NamespaceContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	NamespaceRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	NamespaceWordprocessing = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	namespaceCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	namespaceDublinCore     = "http://purl.org/dc/elements/1.1/"
	namespaceDCTerms        = "http://purl.org/dc/terms/"
	namespaceXSI            = "http://www.w3.org/2001/XMLSchema-instance"
)

// Content types.
const (
	ContentTypeRelationships  = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML            = "application/xml"
	ContentTypeDocument       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeCoreProperties = "application/vnd.openxmlformats-package.core-properties+xml"
)

// Relationship types.
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeCoreProperties = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// part is one rendered archive entry.
type part struct {
	Name string
	Data []byte
}

type contentTypes struct {
	XMLName   xml.Name     `xml:"Types"`
	Xmlns     string       `xml:"xmlns,attr"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type relationships struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Xmlns         string         `xml:"xmlns,attr"`
	Relationships []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type coreProperties struct {
	XMLName      xml.Name `xml:"cp:coreProperties"`
	XmlnsCP      string   `xml:"xmlns:cp,attr"`
	XmlnsDC      string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string   `xml:"xmlns:dcterms,attr"`
	XmlnsXSI     string   `xml:"xmlns:xsi,attr"`
	Title        string   `xml:"dc:title,omitempty"`
	Subject      string   `xml:"dc:subject,omitempty"`
	Creator      string   `xml:"dc:creator,omitempty"`
	Created      *w3cdtf  `xml:"dcterms:created,omitempty"`
}

type w3cdtf struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// renderParts serialises doc into archive entries in archive order.
func renderParts(doc *domain.Document) ([]part, error) {
	withCore := !doc.Properties.IsZero()

	types := contentTypes{
		Xmlns: NamespaceContentTypes,
		Defaults: []ctDefault{
			{Extension: "rels", ContentType: ContentTypeRelationships},
			{Extension: "xml", ContentType: ContentTypeXML},
		},
		Overrides: []ctOverride{
			{PartName: "/" + DocumentPart, ContentType: ContentTypeDocument},
		},
	}
	rels := relationships{
		Xmlns: NamespaceRelationships,
		Relationships: []relationship{
			{ID: "rId1", Type: RelTypeOfficeDocument, Target: DocumentPart},
		},
	}
	if withCore {
		types.Overrides = append(types.Overrides, ctOverride{
			PartName:    "/" + CorePropertiesPart,
			ContentType: ContentTypeCoreProperties,
		})
		rels.Relationships = append(rels.Relationships, relationship{
			ID: "rId2", Type: RelTypeCoreProperties, Target: CorePropertiesPart,
		})
	}

	typesXML, err := marshalPart(types)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content types: %w", err)
	}
	relsXML, err := marshalPart(rels)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal relationships: %w", err)
	}
	documentXML, err := marshalPart(newDocument(doc.Blocks))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	parts := []part{
		{Name: ContentTypesPart, Data: typesXML},
		{Name: RelationshipsPart, Data: relsXML},
		{Name: DocumentPart, Data: documentXML},
	}

	if withCore {
		coreXML, err := marshalPart(newCoreProperties(doc.Properties, doc.CreatedAt))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal core properties: %w", err)
		}
		parts = append(parts, part{Name: CorePropertiesPart, Data: coreXML})
	}

	return parts, nil
}

func newCoreProperties(p domain.Properties, fallback time.Time) coreProperties {
	cp := coreProperties{
		XmlnsCP:      namespaceCoreProperties,
		XmlnsDC:      namespaceDublinCore,
		XmlnsDCTerms: namespaceDCTerms,
		XmlnsXSI:     namespaceXSI,
		Title:        p.Title,
		Subject:      p.Subject,
		Creator:      p.Author,
	}
	created := p.Created
	if created.IsZero() {
		created = fallback
	}
	if !created.IsZero() {
		cp.Created = &w3cdtf{
			Type:  "dcterms:W3CDTF",
			Value: created.UTC().Format(time.RFC3339),
		}
	}
	return cp
}

// marshalPart renders v with the standalone XML declaration.
func marshalPart(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
