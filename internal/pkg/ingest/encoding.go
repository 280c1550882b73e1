package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextEncoding is one candidate in the delimited-text fallback chain
type TextEncoding struct {
	Name string
	// Charset is nil for UTF-8
	Charset encoding.Encoding
}

var (
	UTF8        = TextEncoding{Name: "utf-8"}
	TIS620      = TextEncoding{Name: "tis-620", Charset: charmap.Windows874}
	Windows1252 = TextEncoding{Name: "windows-1252", Charset: charmap.Windows1252}
	Latin1      = TextEncoding{Name: "iso-8859-1", Charset: charmap.ISO8859_1}
)

// DefaultTextEncodings is the order candidates are tried in
func DefaultTextEncodings() []TextEncoding {
	return []TextEncoding{UTF8, TIS620, Windows1252, Latin1}
}

var errUnmappedByte = errors.New("byte has no mapping in this encoding")

// Decode converts content to UTF-8. It fails when the bytes are not valid
// for the encoding, so the caller can move on to the next candidate.
func (e TextEncoding) Decode(content []byte) ([]byte, error) {
	if e.Charset == nil {
		content = bytes.TrimPrefix(content, utf8BOM)
		if !utf8.Valid(content) {
			return nil, fmt.Errorf("%s: invalid byte sequence", e.Name)
		}
		return content, nil
	}

	decoded, err := e.Charset.NewDecoder().Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	// charmap decodes undefined code points to U+FFFD instead of failing
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return nil, fmt.Errorf("%s: %w", e.Name, errUnmappedByte)
	}
	return decoded, nil
}
