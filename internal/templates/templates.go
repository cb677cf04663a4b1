package templates

import (
	"embed"
	"fmt"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Fragment names. The generated documents are plain concatenations of these.
const (
	Banner       = "banner.tmpl"
	HeaderTop    = "header_top.h.tmpl"
	HeaderBottom = "header_bottom.h.tmpl"
	SourceTop    = "source_top.cpp.tmpl"
	SourceMiddle = "source_middle.cpp.tmpl"
	SourceBottom = "source_bottom.cpp.tmpl"
)

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// GetAll loads several fragments at once, keyed by name.
func GetAll(names ...string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	for _, name := range names {
		content, err := Get(name)
		if err != nil {
			return nil, err
		}
		out[name] = content
	}
	return out, nil
}
