package constants

import "strings"

// Format identifies a supported document format.
type Format string

const (
	PDF   Format = "PDF"
	DOCX  Format = "DOCX"
	DOC   Format = "DOC"
	IMAGE Format = "IMAGE"
	TEXT  Format = "TEXT"
)

// extToFormat maps normalized file extensions to their document format.
var extToFormat = map[string]Format{
	"pdf":  PDF,
	"docx": DOCX,
	"doc":  DOC,
	"jpg":  IMAGE,
	"jpeg": IMAGE,
	"png":  IMAGE,
	"tif":  IMAGE,
	"tiff": IMAGE,
	"bmp":  IMAGE,
	"txt":  TEXT,
	"text": TEXT,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the document format for a file extension,
// or "" when the extension is not supported.
func MapExtToFormat(ext string) Format {
	return extToFormat[NormalizeExt(ext)]
}
