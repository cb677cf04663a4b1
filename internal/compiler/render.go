package compiler

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xll-gen/resources-compiler/pkg/log"
)

const (
	// bytesPerLine is the element count between line breaks in a rendered array.
	bytesPerLine = 32

	elementSeparator = ','
	arrayTerminator  = "};\n\n"
)

// Render emits a constexpr array definition for data named identifier:
//
//	constexpr const unsigned char logo_png[3] = {
//	137,80,78};
//
// Every value is written as an unsigned decimal. A line break precedes each
// group of 32 elements.
func Render(identifier string, data []byte) string {
	var b strings.Builder
	b.Grow(sizeHint(identifier, len(data)))

	var num [20]byte
	b.WriteString("constexpr const unsigned char ")
	b.WriteString(identifier)
	b.WriteByte('[')
	b.Write(strconv.AppendInt(num[:0], int64(len(data)), 10))
	b.WriteString("] = {")

	for i, v := range data {
		if i > 0 {
			b.WriteByte(elementSeparator)
		}
		if i%bytesPerLine == 0 {
			b.WriteByte('\n')
		}
		b.Write(strconv.AppendUint(num[:0], uint64(v), 10))
	}

	if len(data) == 0 {
		log.L().Warn("end token is not found, so it looks like an error",
			zap.String("identifier", identifier))
	}
	b.WriteString(arrayTerminator)

	return b.String()
}

// sizeHint is an upper bound of the rendered size: '255,' per byte, a new
// line every 32 bytes and the declaration itself.
func sizeHint(identifier string, n int) int {
	return n*4 + n/bytesPerLine + len(identifier) + 64
}
