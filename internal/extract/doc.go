package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"

	"github.com/talentsift/resume-parser/constants"
)

// extractDOC converts a legacy Word document to DOCX with soffice under a
// bounded timeout and parses the result. When conversion is unavailable or
// fails, it falls back to docconv's generic legacy-document extractor.
func (e *Extractor) extractDOC(ctx context.Context, path string) Result {
	var warnings []string

	text, err := e.docViaSoffice(ctx, path)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("soffice: %v", err))
		e.logger.Warn("extract.doc.convert_failed", "path", path, "error", err)
	} else if text != "" {
		return Result{Text: text, Pages: 1, Format: constants.DOC, Method: "doc-convert", Warnings: warnings}
	}

	res, err := docconv.ConvertPath(path)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("docconv: %v", err))
		return Result{Format: constants.DOC, Method: "doc-fallback", Warnings: warnings}
	}
	return Result{Text: res.Body, Pages: 1, Format: constants.DOC, Method: "doc-fallback", Warnings: warnings}
}

func (e *Extractor) docViaSoffice(ctx context.Context, path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "rp-doc-*")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	cctx, cancel := context.WithTimeout(ctx, e.cfg.ConvertTimeout)
	defer cancel()

	// soffice --headless --convert-to docx --outdir <tmp> <path>
	_, errb, err := e.runner.Run(cctx, e.cfg.Soffice, "--headless", "--convert-to", "docx", "--outdir", tmpDir, path)
	if err != nil {
		return "", fmt.Errorf("convert: %w (%s)", err, truncate(string(errb), 256))
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	converted := filepath.Join(tmpDir, base+".docx")
	if _, err := os.Stat(converted); err != nil {
		return "", fmt.Errorf("conversion produced no output: %v", err)
	}
	return docxText(converted)
}
