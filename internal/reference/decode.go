package reference

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

var (
	magicGzip  = []byte{0x1f, 0x8b}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// openText unwraps gzip content if present and returns a reader producing UTF-8.
func openText(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(magicGzip))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.Equal(head, magicGzip) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip: %w", err)
		}

		return utf8Reader(zr)
	}

	return utf8Reader(br)
}

// utf8Reader detects the encoding of r and returns a reader producing UTF-8.
//
// Detection order:
//  1. Check for BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Validate the sniffed bytes as UTF-8
//  3. Heuristic detection via chardet
//  4. Fallback to Windows-1252
//
// Only the first sniffLen bytes are inspected. Content read as UTF-8 goes
// through a decoder that turns invalid sequences past that window into U+FFFD,
// so a stray Latin-1 byte late in the file cannot fail the whole load.
func utf8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	buf, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	// 1. Check for BOM.
	if bytes.HasPrefix(buf, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return utf8Replacing(br), nil
	}

	if bytes.HasPrefix(buf, bomUTF16LE) {
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if bytes.HasPrefix(buf, bomUTF16BE) {
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	// 2. A full window may end inside a rune; that alone is not invalid.
	if len(buf) == sniffLen {
		buf = trimPartialRune(buf)
	}

	if utf8.Valid(buf) {
		return utf8Replacing(br), nil
	}

	// 3. Heuristic detection via chardet.
	result, err := chardet.NewTextDetector().DetectBest(buf)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return utf8Replacing(br), nil
		case "ISO-8859-2":
			return transform.NewReader(br, charmap.ISO8859_2.NewDecoder()), nil
		case "ISO-8859-9":
			return transform.NewReader(br, charmap.ISO8859_9.NewDecoder()), nil
		}
	}

	// 4. Fallback to Windows-1252.
	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// utf8Replacing passes valid UTF-8 through and replaces invalid bytes with U+FFFD.
func utf8Replacing(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF8.NewDecoder())
}

// trimPartialRune drops a multi-byte sequence cut off at the end of buf.
func trimPartialRune(buf []byte) []byte {
	for i := len(buf) - 1; i >= 0 && i >= len(buf)-utf8.UTFMax; i-- {
		if utf8.RuneStart(buf[i]) {
			if !utf8.FullRune(buf[i:]) {
				return buf[:i]
			}

			break
		}
	}

	return buf
}
