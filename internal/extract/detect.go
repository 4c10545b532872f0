package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/talentsift/resume-parser/constants"
	"github.com/talentsift/resume-parser/internal/common"
)

var magicSignatures = []struct {
	prefix []byte
	format constants.Format
}{
	{[]byte("%PDF-"), constants.PDF},
	{[]byte{0x50, 0x4b, 0x03, 0x04}, constants.DOCX},            // zip container
	{[]byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1}, constants.DOC}, // OLE compound file
	{[]byte{0x89, 'P', 'N', 'G'}, constants.IMAGE},
	{[]byte{0xff, 0xd8, 0xff}, constants.IMAGE}, // JPEG
	{[]byte("BM"), constants.IMAGE},             // BMP
	{[]byte{0x49, 0x49, 0x2a, 0x00}, constants.IMAGE}, // TIFF LE
	{[]byte{0x4d, 0x4d, 0x00, 0x2a}, constants.IMAGE}, // TIFF BE
}

// DetectFormat determines the document format from the declared extension
// and, where the file is readable, a magic-byte signature. The signature
// wins when the two disagree. Returns ErrUnsupportedFormat when neither
// identifies a supported format; this is the one hard failure in the chain.
func DetectFormat(path, declaredExt string) (constants.Format, error) {
	ext := declaredExt
	if ext == "" {
		ext = filepath.Ext(path)
	}
	byExt := constants.MapExtToFormat(ext)

	header := make([]byte, 512)
	f, err := os.Open(path)
	if err == nil {
		n, _ := f.Read(header)
		_ = f.Close()
		header = header[:n]
		if bySig := sniff(header); bySig != "" {
			return bySig, nil
		}
	}

	if byExt != "" {
		return byExt, nil
	}

	// Printable content with no known extension still parses as plain text.
	if len(header) > 0 && utf8.Valid(header) && QualityScore(string(header)) > 0.8 {
		return constants.TEXT, nil
	}

	return "", common.NewAppError("UNSUPPORTED_FORMAT", "cannot determine document format for "+path, common.ErrUnsupportedFormat)
}

func sniff(header []byte) constants.Format {
	for _, sig := range magicSignatures {
		if bytes.HasPrefix(header, sig.prefix) {
			return sig.format
		}
	}
	return ""
}
