package util

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// EnsureUTF8Bytes decodes capture bytes to a UTF-8 string. Files pulled off
// devices through terminal servers or legacy tooling are often GB18030/GBK,
// Big5 or latin-1; already-valid UTF-8 is returned as-is, and when no
// candidate encoding decodes cleanly the raw bytes are kept so that line
// parsing can still proceed.
func EnsureUTF8Bytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if utf8.Valid(b) {
		return string(b)
	}
	encs := []encoding.Encoding{
		simplifiedchinese.GB18030,
		simplifiedchinese.GBK,
		traditionalchinese.Big5,
		charmap.Windows1252,
		charmap.ISO8859_1,
	}
	for _, enc := range encs {
		if s, ok := tryDecode(enc, b); ok {
			return s
		}
	}
	return string(b)
}

func tryDecode(enc encoding.Encoding, b []byte) (string, bool) {
	reader := transform.NewReader(bytes.NewReader(b), enc.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", false
	}
	if utf8.Valid(decoded) {
		return string(decoded), true
	}
	return "", false
}
