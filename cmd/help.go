package cmd

import (
	"io"

	"github.com/xll-gen/resources-compiler/internal/templates"
	"github.com/xll-gen/resources-compiler/internal/ui"
)

const helpHeading = "usage:"

const helpText = `resources_compiler --sources=file1,file2 --output=full/path/to/file_without_extension

without supplying --sources param, an empty resources holder class will be generated.
the output path is a file name without extension: the tool uses it as the base for the
.h and .cpp files.
note: spaces are not allowed in paths nor between the tags nor the equal signs!

options:
  --sources=a,b,c     resource files, may be repeated; empty items are skipped
  --output=path       output path stem (required)
  --config=file.yaml  read sources, output, strict and logging from a YAML file
  --strict            fail on resources that sanitize to the same name
  --log-level=level   debug, info, warn or error
  --log-file=path     write logs to a file
  --no-color          disable colors
`

// printHelp writes the banner and usage text to w.
func printHelp(w io.Writer, noColor bool) {
	p := ui.NewPrinter(w, noColor)
	if banner, err := templates.Get(templates.Banner); err == nil {
		p.Banner(banner)
	}
	p.Help(helpHeading, helpText)
}
