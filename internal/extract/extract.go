// Package extract converts resume documents into plain text. Each document
// format has an ordered chain of extraction strategies; the chain driver
// scores every attempted stage and keeps the best result rather than the
// first non-empty one. A failing stage is absorbed and the next one tried.
package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/talentsift/resume-parser/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Soffice   string // binary name or absolute path; if empty -> "soffice"

	TesseractLang  string        // default "eng"
	DPI            int           // rasterization DPI for scanned PDFs, default 300
	MaxOCRPages    int           // page cap for the PDF OCR fallback, default 10
	TessdataDir    string
	ConvertTimeout time.Duration // legacy DOC conversion bound, default 30s
}

// Result is the outcome of one extraction. Text is always present, possibly
// empty; Method names the stage that produced it.
type Result struct {
	Text     string
	Pages    int
	Format   constants.Format
	Method   string
	Quality  float64
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Soffice == "" {
		cfg.Soffice = "soffice"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MaxOCRPages <= 0 {
		cfg.MaxOCRPages = 10
	}
	if cfg.ConvertTimeout <= 0 {
		cfg.ConvertTimeout = 30 * time.Second
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy chain based on the detected format.
func (e *Extractor) Extract(ctx context.Context, path string, format constants.Format) Result {
	start := time.Now()
	e.logger.Debug("extract.start", "path", path, "format", format)

	var res Result
	switch format {
	case constants.PDF:
		res = e.extractPDF(ctx, path)
	case constants.DOCX:
		res = e.extractDOCX(path)
	case constants.DOC:
		res = e.extractDOC(ctx, path)
	case constants.IMAGE:
		res = e.extractImage(ctx, path)
	case constants.TEXT:
		res = e.extractPlainText(path)
	default:
		res = Result{Format: format, Warnings: []string{"no extraction chain for format"}}
	}

	res.Format = format
	res.Duration = time.Since(start)
	if res.Quality == 0 {
		res.Quality = QualityScore(res.Text)
	}
	e.logger.Info("extract.done",
		"path", path,
		"format", format,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
		"quality", res.Quality,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res
}
