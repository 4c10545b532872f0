package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/talentsift/resume-parser/constants"
)

// textDecoders is the fixed ordered list of encodings tried for plain text.
var textDecoders = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// extractPlainText decodes the file trying UTF-8 first, then the fixed
// encoding list; the first decoder yielding non-empty content wins.
func (e *Extractor) extractPlainText(path string) Result {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{Format: constants.TEXT, Method: "text", Warnings: []string{err.Error()}}
	}

	if utf8.Valid(raw) {
		if text := strings.TrimSpace(string(raw)); text != "" {
			return Result{Text: text, Pages: 1, Format: constants.TEXT, Method: "text-utf8"}
		}
	}

	var warnings []string
	for _, d := range textDecoders {
		if d.name == "utf-16" && !looksUTF16(raw) {
			continue
		}
		decoded, err := d.enc.NewDecoder().Bytes(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", d.name, err))
			continue
		}
		if text := strings.TrimSpace(string(decoded)); text != "" && utf8.Valid(decoded) {
			return Result{Text: text, Pages: 1, Format: constants.TEXT, Method: "text-" + d.name, Warnings: warnings}
		}
	}

	warnings = append(warnings, "no encoding yielded non-empty content")
	return Result{Format: constants.TEXT, Method: "text", Warnings: warnings}
}

// looksUTF16 gates the UTF-16 decoder: a BOM, or the NUL-byte density
// UTF-16 ASCII text exhibits. Without the gate it would happily decode
// single-byte encodings into CJK noise.
func looksUTF16(raw []byte) bool {
	if len(raw) >= 2 {
		if (raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF) {
			return true
		}
	}
	zeros := 0
	for _, b := range raw {
		if b == 0 {
			zeros++
		}
	}
	return len(raw) > 0 && zeros*4 >= len(raw)
}
