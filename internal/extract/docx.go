package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/talentsift/resume-parser/constants"
)

// extractDOCX reads word/document.xml out of the ZIP container. Paragraph
// text comes first; table rows are flattened to pipe-delimited lines and
// appended after the paragraphs.
func (e *Extractor) extractDOCX(path string) Result {
	text, err := docxText(path)
	if err != nil {
		e.logger.Warn("extract.docx.failed", "path", path, "error", err)
		return Result{Format: constants.DOCX, Method: "docx", Warnings: []string{err.Error()}}
	}
	return Result{Text: text, Pages: 1, Format: constants.DOCX, Method: "docx"}
}

func docxText(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer func() {
		_ = r.Close()
	}()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	decoder := xml.NewDecoder(rc)

	var paragraphs []string
	var tableRows []string

	var currentText strings.Builder
	var paragraphStyle string
	var inParagraph bool

	var tableDepth int
	var rowCells []string
	var cellText strings.Builder
	var inCell bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				if tableDepth > 0 {
					rowCells = rowCells[:0]
				}
			case "tc":
				if tableDepth > 0 {
					inCell = true
					cellText.Reset()
				}
			case "p":
				if tableDepth == 0 {
					inParagraph = true
					currentText.Reset()
					paragraphStyle = ""
				}
			case "pStyle":
				if inParagraph {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							paragraphStyle = attr.Value
						}
					}
				}
			}

		case xml.CharData:
			if inCell {
				cellText.Write(t)
			} else if inParagraph {
				currentText.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "tr":
				if tableDepth > 0 && len(rowCells) > 0 {
					tableRows = append(tableRows, strings.Join(rowCells, " | "))
				}
			case "tc":
				if inCell {
					inCell = false
					if cell := strings.TrimSpace(cellText.String()); cell != "" {
						rowCells = append(rowCells, cell)
					}
				}
			case "p":
				if inParagraph {
					inParagraph = false
					text := strings.TrimSpace(currentText.String())
					if text == "" {
						continue
					}
					if docxHeadingLevel(paragraphStyle) > 0 {
						// Uppercase heading-styled paragraphs so the heading
						// tag survives into plain text for the segmenter.
						text = strings.ToUpper(text)
					}
					paragraphs = append(paragraphs, text)
				}
			}
		}
	}

	all := make([]string, 0, len(paragraphs)+len(tableRows))
	all = append(all, paragraphs...)
	all = append(all, tableRows...)
	return strings.Join(all, "\n"), nil
}

// docxHeadingLevel extracts the heading level from a paragraph style name.
// e.g. "Heading1" → 1, "Title" → 1, anything else → 0.
func docxHeadingLevel(style string) int {
	lower := strings.ToLower(style)
	if lower == "title" {
		return 1
	}
	if lower == "subtitle" {
		return 2
	}
	if strings.HasPrefix(lower, "heading") {
		rest := lower[len("heading"):]
		if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
			return int(rest[0] - '0')
		}
	}
	return 0
}
