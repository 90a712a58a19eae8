package reference

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := openText(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestOpenText_UTF8Passthrough(t *testing.T) {
	input := "room_name\nChambre Supérieure\nHabitación Doble\n"
	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestOpenText_Latin1(t *testing.T) {
	// Windows-1252: é = 0xE9
	input := []byte{'S', 'u', 'p', 0xE9, 'r', 'i', 'e', 'u', 'r', 'e', '\n'}
	assert.Equal(t, "Supérieure\n", readAll(t, input))
}

func TestOpenText_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("room_id\n")...)
	assert.Equal(t, "room_id\n", readAll(t, input))
}

func TestOpenText_UTF16LEBOM(t *testing.T) {
	input := []byte{0xFF, 0xFE, 'i', 0x00, 'd', 0x00, '\n', 0x00}
	assert.Equal(t, "id\n", readAll(t, input))
}

func TestOpenText_Gzip(t *testing.T) {
	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("hotel_id,lp_id\n1,2\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	assert.Equal(t, "hotel_id,lp_id\n1,2\n", readAll(t, buf.Bytes()))
}

func TestOpenText_Empty(t *testing.T) {
	assert.Equal(t, "", readAll(t, nil))
}

func TestOpenText_MultibyteAtSniffBoundary(t *testing.T) {
	// "é" is two bytes; place it across the sniff window edge.
	input := strings.Repeat("a", sniffLen-1) + "é\n"
	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestOpenText_InvalidByteAfterSniffWindow(t *testing.T) {
	head := strings.Repeat("a", sniffLen) + "\n"
	input := append([]byte(head), 'S', 'u', 'p', 0xE9, 'r', 'i', 'e', 'u', 'r', 'e', '\n')

	got := readAll(t, input)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, head+"Sup\uFFFDrieure\n", got)
}

func TestTrimPartialRune(t *testing.T) {
	assert.Equal(t, []byte("ab"), trimPartialRune([]byte{'a', 'b', 0xC3}))
	assert.Equal(t, []byte("abé"), trimPartialRune([]byte("abé")))
	assert.Equal(t, []byte("abc"), trimPartialRune([]byte("abc")))
	assert.Equal(t, []byte("a"), trimPartialRune([]byte{'a', 0xE2, 0x82}))
}
