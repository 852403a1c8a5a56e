// Package charset selects the text encoding of rendered output.
package charset

import (
	"errors"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding indicates an encoding name that is not supported.
var ErrUnknownEncoding = errors.New("charset: unknown encoding")

// Default is the name of the encoding used when none is given.
const Default = "utf-8"

// Braille glyphs live outside every legacy code page, so only Unicode
// encodings are offered.
var encodings = map[string]encoding.Encoding{
	"utf-8":     unicode.UTF8,
	"utf-8-bom": unicode.UTF8BOM,
	"utf-16le":  unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16be":  unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

var aliases = map[string]string{
	"utf8":    "utf-8",
	"utf8bom": "utf-8-bom",
	"utf-16":  "utf-16le",
	"utf16":   "utf-16le",
	"utf16le": "utf-16le",
	"utf16be": "utf-16be",
}

// Lookup returns the encoding registered under name, ignoring case.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, ErrUnknownEncoding
	}
	return enc, nil
}

// Names lists the canonical encoding names in sorted order.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewWriter returns a writer that encodes UTF-8 text written to it with enc
// before passing it to w. Close flushes any buffered output.
func NewWriter(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	return transform.NewWriter(w, enc.NewEncoder())
}

// EncodeString converts UTF-8 text to enc.
func EncodeString(s string, enc encoding.Encoding) ([]byte, error) {
	b, _, err := transform.Bytes(enc.NewEncoder(), []byte(s))
	return b, err
}
