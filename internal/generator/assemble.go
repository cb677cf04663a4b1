package generator

import (
	"strings"

	"github.com/xll-gen/resources-compiler/internal/compiler"
	"github.com/xll-gen/resources-compiler/internal/templates"
)

// Documents is the generated header/source pair.
type Documents struct {
	// Header declares resources::manager. It does not depend on the inputs.
	Header string
	// Source holds every array, the manager constructor that registers them
	// and the manager::get implementation.
	Source string
}

// Assemble concatenates the static template fragments with the per-file
// fragments of entries.
//
// All arrays are placed before the manager constructor; the registrations go
// inside it, in the same order. headerName is the file name the source
// includes. sourceSize is the combined size of the entry fragments and is used
// to size the source buffer up front.
func Assemble(entries []compiler.Entry, headerName string, sourceSize int) (Documents, error) {
	frags, err := templates.GetAll(
		templates.Banner,
		templates.HeaderTop,
		templates.HeaderBottom,
		templates.SourceTop,
		templates.SourceMiddle,
		templates.SourceBottom,
	)
	if err != nil {
		return Documents{}, err
	}
	banner := frags[templates.Banner]

	var header strings.Builder
	header.Grow(len(frags[templates.HeaderTop]) + len(banner) + len(frags[templates.HeaderBottom]))
	header.WriteString(frags[templates.HeaderTop])
	header.WriteString(banner)
	header.WriteString(frags[templates.HeaderBottom])

	include := includeLine(headerName)

	var source strings.Builder
	source.Grow(len(include) + len(banner) + sourceSize +
		len(frags[templates.SourceTop]) + len(frags[templates.SourceMiddle]) + len(frags[templates.SourceBottom]))
	source.WriteString(include)
	source.WriteString(banner)
	source.WriteString(frags[templates.SourceTop])
	for _, e := range entries {
		source.WriteString(e.Array)
	}
	source.WriteString(frags[templates.SourceMiddle])
	for _, e := range entries {
		source.WriteString(e.Registration)
	}
	source.WriteString(frags[templates.SourceBottom])

	return Documents{Header: header.String(), Source: source.String()}, nil
}

// includeLine opens the source document: the header include followed by the
// start of the banner comment.
func includeLine(headerName string) string {
	return "#include \"" + headerName + "\"\n\n/*\n"
}
