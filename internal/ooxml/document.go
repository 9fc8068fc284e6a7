package ooxml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/custodia-labs/md2docx/internal/core/domain"
)

const headingStylePrefix = "Heading"

// wDocument is the marshalled form of word/document.xml.
// Element names carry the w: prefix literally so the output matches
// what word processors expect without per-element namespace declarations.
type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Paragraphs []wParagraph `xml:"w:p"`
}

type wParagraph struct {
	Properties *wParagraphProperties `xml:"w:pPr,omitempty"`
	Run        wRun                  `xml:"w:r"`
}

type wParagraphProperties struct {
	Style wStyle `xml:"w:pStyle"`
}

type wStyle struct {
	Val string `xml:"w:val,attr"`
}

type wRun struct {
	Text wText `xml:"w:t"`
}

type wText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// newDocument maps blocks one-to-one onto paragraphs.
func newDocument(blocks []domain.Block) wDocument {
	doc := wDocument{
		XmlnsW: NamespaceWordprocessing,
		Body: wBody{
			Paragraphs: make([]wParagraph, 0, len(blocks)),
		},
	}
	for _, b := range blocks {
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, newParagraph(b))
	}
	return doc
}

func newParagraph(b domain.Block) wParagraph {
	p := wParagraph{
		Run: wRun{Text: wText{Value: b.Text}},
	}
	if style := b.StyleID(); style != "" {
		p.Properties = &wParagraphProperties{Style: wStyle{Val: style}}
	}
	if needsPreserve(b.Text) {
		p.Run.Text.Space = "preserve"
	}
	return p
}

// needsPreserve reports whether a consumer would collapse whitespace in s.
func needsPreserve(s string) bool {
	if s == "" {
		return false
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	prevSpace := false
	for _, r := range s {
		space := unicode.IsSpace(r)
		if space && (prevSpace || r != ' ') {
			return true
		}
		prevSpace = space
	}
	return false
}

// documentXML is the read side of word/document.xml. Tags carry no
// namespace so they match by local name.
type documentXML struct {
	Body struct {
		Paragraphs []paragraphXML `xml:"p"`
	} `xml:"body"`
}

type paragraphXML struct {
	Properties struct {
		Style struct {
			Val string `xml:"val,attr"`
		} `xml:"pStyle"`
	} `xml:"pPr"`
	Runs []struct {
		Text []struct {
			Content string `xml:",chardata"`
		} `xml:"t"`
	} `xml:"r"`
}

// parseDocument decodes word/document.xml back into Blocks.
func parseDocument(content []byte) ([]domain.Block, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, DocumentPart, err)
	}

	blocks := make([]domain.Block, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		var text strings.Builder
		for _, r := range para.Runs {
			for _, t := range r.Text {
				text.WriteString(t.Content)
			}
		}
		if level, ok := headingLevel(para.Properties.Style.Val); ok {
			blocks = append(blocks, domain.NewHeading(level, text.String()))
			continue
		}
		blocks = append(blocks, domain.NewParagraph(text.String()))
	}
	return blocks, nil
}

// headingLevel parses a style id of the form HeadingN.
func headingLevel(style string) (int, bool) {
	rest, ok := strings.CutPrefix(style, headingStylePrefix)
	if !ok || rest == "" {
		return 0, false
	}
	level, err := strconv.Atoi(rest)
	if err != nil || level < 1 {
		return 0, false
	}
	return level, true
}
