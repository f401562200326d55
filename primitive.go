package wadlevel

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

func readInt16(data []byte, off int) (int16, error) {
	if err := checkRange(off, 2, len(data)); err != nil {
		return 0, err
	}
	return le16(data, off), nil
}

func readInt32(data []byte, off int) (int32, error) {
	if err := checkRange(off, 4, len(data)); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(data[off:])), nil
}

// readFixedString reads an n-byte name field. The field need not contain a
// terminator; everything from the first NUL on is dropped.
func readFixedString(data []byte, off, n int) (string, error) {
	if err := checkRange(off, n, len(data)); err != nil {
		return "", err
	}
	return fixedString(data[off : off+n]), nil
}

// fixedString converts a NUL-padded field. Names were authored under DOS, so
// any byte above 0x7f is read as code page 437. The result can be longer
// than the field; encode it back with charmap.CodePage437 to get the
// original bytes.
func fixedString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if isASCII(field) {
		return string(field)
	}
	text, err := charmap.CodePage437.NewDecoder().Bytes(field)
	if err != nil {
		return string(field)
	}
	return string(text)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// le16 decodes a little-endian int16 at off. Callers check bounds first.
func le16(b []byte, off int) int16 {
	return int16(binary.LittleEndian.Uint16(b[off:]))
}
