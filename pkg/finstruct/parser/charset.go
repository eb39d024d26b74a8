package parser

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// textDecoding is one candidate character encoding.
type textDecoding struct {
	name   string
	decode func(raw []byte) (string, error)
}

var errInvalidUTF8 = errors.New("invalid utf-8")

// textDecodings are tried in order; the first that succeeds wins.
var textDecodings = []textDecoding{
	{"utf-16", decodeUTF16},
	{"utf-8", decodeUTF8},
	{"windows-1252", decodeWindows1252},
}

// decodeText converts raw bytes to a string and names the encoding used.
func decodeText(raw []byte) (string, string, error) {
	var errs []error
	for _, d := range textDecodings {
		s, err := d.decode(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return s, d.name, nil
	}
	return "", "", errors.Join(errs...)
}

func decodeUTF16(raw []byte) (string, error) {
	var endianness unicode.Endianness
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		endianness = unicode.LittleEndian
	case bytes.HasPrefix(raw, bomUTF16BE):
		endianness = unicode.BigEndian
	default:
		return "", errors.New("no utf-16 byte order mark")
	}
	out, _, err := transform.Bytes(unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeUTF8(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, bomUTF8)
	if !utf8.Valid(raw) {
		return "", errInvalidUTF8
	}
	return string(raw), nil
}

func decodeWindows1252(raw []byte) (string, error) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
