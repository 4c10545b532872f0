package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"

	"github.com/talentsift/resume-parser/constants"
)

type pdfStage struct {
	name string
	run  func(ctx context.Context, path string) (text string, pages int, err error)
}

// extractPDF runs the PDF stage chain: native text layer, layout-preserving
// pdftotext, MuPDF, and finally rasterized OCR when everything else
// under-performs. The best-scoring result wins, not the last attempted.
func (e *Extractor) extractPDF(ctx context.Context, path string) Result {
	stages := []pdfStage{
		{"pdf-native", e.pdfNativeText},
		{"pdf-layout", e.pdfLayoutText},
		{"pdf-fitz", e.pdfFitzText},
	}

	best := Result{Format: constants.PDF}
	var warnings []string
	for _, st := range stages {
		text, pages, err := runStage(st, ctx, path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", st.name, err))
			e.logger.Warn("extract.pdf.stage_failed", "stage", st.name, "error", err)
			continue
		}
		q := QualityScore(text)
		e.logger.Debug("extract.pdf.stage", "stage", st.name, "chars", len(text), "quality", q)
		if q > best.Quality {
			best = Result{Text: text, Pages: pages, Format: constants.PDF, Method: st.name, Quality: q}
		}
	}

	if best.Quality < pdfQualityThreshold || len(best.Text) < minPDFTextChars {
		text, pages, err := e.pdfOCRText(ctx, path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("pdf-ocr: %v", err))
			e.logger.Warn("extract.pdf.ocr_failed", "error", err)
		} else if q := QualityScore(text); q > best.Quality {
			best = Result{Text: text, Pages: pages, Format: constants.PDF, Method: "pdf-ocr", Quality: q}
		}
	}

	best.Warnings = warnings
	return best
}

// runStage isolates a stage so a panicking third-party parser degrades to an
// empty result instead of aborting the pipeline.
func runStage(st pdfStage, ctx context.Context, path string) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("panic in %s: %v", st.name, r)
		}
	}()
	return st.run(ctx, path)
}

func (e *Extractor) pdfNativeText(_ context.Context, path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var b strings.Builder
	pages := r.NumPage()
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.TrimSpace(pageText))
	}
	return b.String(), pages, nil
}

func (e *Extractor) pdfLayoutText(ctx context.Context, path string) (string, int, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, fmt.Errorf("pdftotext: %w (%s)", err, truncate(string(errb), 256))
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return text, pages, nil
}

func (e *Extractor) pdfFitzText(_ context.Context, path string) (string, int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf with mupdf: %w", err)
	}
	defer func() {
		_ = doc.Close()
	}()

	var b strings.Builder
	pages := doc.NumPage()
	for i := 0; i < pages; i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.TrimSpace(pageText))
	}
	return b.String(), pages, nil
}

func (e *Extractor) pdfOCRText(ctx context.Context, path string) (string, int, error) {
	tmpDir, err := os.MkdirTemp("", "rp-pp-*")
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 256))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) > e.cfg.MaxOCRPages {
		matches = matches[:e.cfg.MaxOCRPages]
	}
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("pdftoppm produced no images")
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := e.tesseractOCR(ctx, img)
		if err != nil {
			e.logger.Warn("extract.pdf.ocr_page_failed", "image", img, "error", err)
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(txt)
	}
	return b.String(), len(matches), nil
}
