package extract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDOCX(t *testing.T, documentXML string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

const sampleDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr><w:pStyle w:val="Heading1"/></w:pPr>
      <w:r><w:t>Work Experience</w:t></w:r>
    </w:p>
    <w:p><w:r><w:t>Backend Developer at Acme</w:t></w:r></w:p>
    <w:p><w:r><w:t></w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Go</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>PostgreSQL</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

func TestDocxText(t *testing.T) {
	path := writeDOCX(t, sampleDocumentXML)
	got, err := docxText(path)
	require.NoError(t, err)

	// Headings are uppercased, tables flattened after paragraphs.
	assert.Equal(t, "WORK EXPERIENCE\nBackend Developer at Acme\nGo | PostgreSQL", got)
}

func TestDocxTextMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	_, err := w.Create("word/other.xml")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	_, err = docxText(path)
	assert.Error(t, err)
}

func TestDocxTextNotAZip(t *testing.T) {
	path := writeTemp(t, "fake.docx", []byte("not a zip archive"))
	_, err := docxText(path)
	assert.Error(t, err)
}

func TestDocxHeadingLevel(t *testing.T) {
	assert.Equal(t, 1, docxHeadingLevel("Heading1"))
	assert.Equal(t, 3, docxHeadingLevel("heading3"))
	assert.Equal(t, 1, docxHeadingLevel("Title"))
	assert.Equal(t, 2, docxHeadingLevel("Subtitle"))
	assert.Equal(t, 0, docxHeadingLevel("Normal"))
	assert.Equal(t, 0, docxHeadingLevel(""))
}
