package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxBody maps the top level of word/document.xml. Paragraphs and tables are
// collected separately so that tables can be emitted after all body
// paragraphs, each in document order. Paragraphs nested inside table cells
// are consumed by the tbl field and do not appear in Paragraphs.
type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
		Tables     []docxTable     `xml:"tbl"`
	} `xml:"body"`
}

type docxParagraph struct {
	Runs []struct {
		Texts []string `xml:"t"`
	} `xml:"r"`
}

type docxTable struct {
	Rows []struct {
		Cells []struct {
			Paragraphs []docxParagraph `xml:"p"`
		} `xml:"tc"`
	} `xml:"tr"`
}

func (p docxParagraph) text() string {
	var b strings.Builder
	for _, run := range p.Runs {
		for _, t := range run.Texts {
			b.WriteString(t)
		}
	}
	return b.String()
}

// extractDOCX emits one line per paragraph in document order, then the
// contents of every table: one line per row with cell texts joined by " | ".
// Resumes frequently carry skills in tables, so tables are not skipped.
func extractDOCX(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var docXML []byte
	for _, f := range zipReader.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("failed to read document.xml: %w", err)
			}
			break
		}
	}

	if len(docXML) == 0 {
		return "", fmt.Errorf("no document.xml found in DOCX archive")
	}

	var doc docxDocument
	if err := xml.Unmarshal(docXML, &doc); err != nil {
		return "", fmt.Errorf("failed to parse document.xml: %w", err)
	}

	var textBuilder strings.Builder

	for _, paragraph := range doc.Body.Paragraphs {
		textBuilder.WriteString(paragraph.text())
		textBuilder.WriteString("\n")
	}

	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			cellTexts := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				paragraphTexts := make([]string, 0, len(cell.Paragraphs))
				for _, paragraph := range cell.Paragraphs {
					paragraphTexts = append(paragraphTexts, paragraph.text())
				}
				cellTexts = append(cellTexts, strings.Join(paragraphTexts, "\n"))
			}
			textBuilder.WriteString(strings.Join(cellTexts, " | "))
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}
