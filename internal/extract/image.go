package extract

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/disintegration/imaging"

	"github.com/talentsift/resume-parser/constants"
)

var reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)

// extractImage preprocesses a scanned page and runs tesseract over it.
func (e *Extractor) extractImage(ctx context.Context, path string) Result {
	var warnings []string

	ocrPath := path
	if pre, err := e.preprocessImage(path); err != nil {
		warnings = append(warnings, fmt.Sprintf("preprocess: %v", err))
		e.logger.Warn("extract.image.preprocess_failed", "path", path, "error", err)
	} else {
		ocrPath = pre
		defer func() {
			_ = os.Remove(pre)
		}()
	}

	txt, err := e.tesseractOCR(ctx, ocrPath)
	if err != nil {
		warnings = append(warnings, err.Error())
		return Result{Format: constants.IMAGE, Method: "image-ocr", Warnings: warnings}
	}
	return Result{
		Text:     txt,
		Pages:    1,
		Format:   constants.IMAGE,
		Method:   "image-ocr",
		Warnings: warnings,
	}
}

// preprocessImage writes a grayscale, contrast-boosted, sharpened copy of
// the input to a temp PNG and returns its path.
func (e *Extractor) preprocessImage(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	out := imaging.Grayscale(img)
	out = imaging.AdjustContrast(out, 15)
	out = imaging.Sharpen(out, 1.0)

	f, err := os.CreateTemp("", "rp-img-*.png")
	if err != nil {
		return "", err
	}
	dst := f.Name()
	_ = f.Close()
	if err := imaging.Save(out, dst); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("save preprocessed image: %w", err)
	}
	return dst, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 256))
	}

	// minor cleanup of obvious line noise
	return reBoxNoise.ReplaceAllString(string(out), ""), nil
}
