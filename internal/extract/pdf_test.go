package extract

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/resume-parser/constants"
)

// fakeRunner serves canned stdout per binary name.
type fakeRunner struct {
	outputs map[string][]byte
	errs    map[string]error
}

func (f fakeRunner) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	if err, ok := f.errs[name]; ok {
		return nil, []byte("boom"), err
	}
	if out, ok := f.outputs[name]; ok {
		return out, nil, nil
	}
	return nil, nil, errors.New("unknown binary " + name)
}

var layoutText = strings.Repeat("Jane Doe worked on backend services and infrastructure tooling. ", 4)

func TestExtractPDFLayoutStageWins(t *testing.T) {
	// The file is not a real PDF, so the native and MuPDF stages fail and
	// the subprocess stage carries the chain.
	path := writeTemp(t, "fake.pdf", []byte("%PDF-1.4 but not really"))

	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{outputs: map[string][]byte{"pdftotext": []byte(layoutText)}}

	got := e.extractPDF(context.Background(), path)
	assert.Equal(t, "pdf-layout", got.Method)
	assert.Equal(t, layoutText, got.Text)
	assert.Greater(t, got.Quality, pdfQualityThreshold)
	assert.NotEmpty(t, got.Warnings) // failed stages are recorded, not fatal
}

func TestExtractPDFAllStagesFail(t *testing.T) {
	path := writeTemp(t, "fake.pdf", []byte("junk"))

	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{errs: map[string]error{
		"pdftotext": errors.New("exit status 1"),
		"pdftoppm":  errors.New("exit status 1"),
	}}

	got := e.extractPDF(context.Background(), path)
	assert.Empty(t, got.Text)
	assert.Equal(t, constants.PDF, got.Format)
	assert.NotEmpty(t, got.Warnings)
}

func TestExtractImageWithFakeOCR(t *testing.T) {
	// Not a decodable image, so preprocessing degrades to the raw path.
	path := writeTemp(t, "scan.png", []byte("not an image"))

	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{outputs: map[string][]byte{"tesseract": []byte("JOHN DOE\nENGINEER\n____\n")}}

	got := e.extractImage(context.Background(), path)
	require.Equal(t, "image-ocr", got.Method)
	assert.Contains(t, got.Text, "JOHN DOE")
	assert.NotContains(t, got.Text, "____")
	assert.NotEmpty(t, got.Warnings) // preprocess failure is downgraded
}

func TestPreprocessImageLeavesNoTempDir(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := writeTemp(t, "scan.png", buf.Bytes())

	e := NewExtractor(Config{}, nil)
	pre, err := e.preprocessImage(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(pre) })

	// A plain file in the temp dir; removing it is the whole cleanup.
	assert.Equal(t, filepath.Clean(os.TempDir()), filepath.Dir(pre))
	assert.True(t, strings.HasSuffix(pre, ".png"))
}

func TestExtractImageOCRFailure(t *testing.T) {
	path := writeTemp(t, "scan.png", []byte("not an image"))

	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{errs: map[string]error{"tesseract": errors.New("exit status 1")}}

	got := e.extractImage(context.Background(), path)
	assert.Empty(t, got.Text)
	assert.NotEmpty(t, got.Warnings)
}
