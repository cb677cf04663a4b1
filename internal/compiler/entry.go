package compiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/xll-gen/resources-compiler/pkg/log"
)

// MaxRecommendedSize is the file size above which a warning is logged. Bigger
// files are still compiled.
const MaxRecommendedSize = 16 * 1024 * 1024

// ErrEmptyFile is returned by BuildEntry for zero-length files. Callers skip
// such files.
var ErrEmptyFile = errors.New("empty file")

// Entry is the compiled form of a single resource file.
type Entry struct {
	// Path is the source path as given on input.
	Path string
	// Identifier is the sanitized base name and the lookup key.
	Identifier string
	// ArrayName is the C++ array name. It equals Identifier unless another
	// entry already uses that name.
	ArrayName string
	// Size is the number of bytes read from Path.
	Size int
	// Array is the constexpr array definition.
	Array string
	// Registration is the statement that inserts the array into the lookup table.
	Registration string
}

// SourceSize returns the number of characters the entry contributes to the
// definition document.
func (e Entry) SourceSize() int {
	return len(e.Array) + len(e.Registration)
}

// Increase returns the ratio between rendered array size and binary size.
func (e Entry) Increase() float64 {
	if e.Size == 0 {
		return 0
	}
	return float64(len(e.Array)) / float64(e.Size)
}

// BuildEntry reads the file at path and renders its array and registration
// fragments. It returns ErrEmptyFile for zero-length files.
func BuildEntry(path string) (Entry, error) {
	return buildEntry(path, nil)
}

// buildEntry is BuildEntry with a hook choosing the array name for an
// identifier. A nil hook uses the identifier itself.
func buildEntry(path string, arrayName func(identifier string) string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return Entry{}, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	if len(data) > MaxRecommendedSize {
		log.L().Warn("large file is added to the resources",
			zap.String("file", path),
			zap.Int("size", len(data)))
	}

	id := Sanitize(filepath.Base(path))
	name := id
	if arrayName != nil {
		name = arrayName(id)
	}
	e := Entry{
		Path:         path,
		Identifier:   id,
		ArrayName:    name,
		Size:         len(data),
		Array:        Render(name, data),
		Registration: Registration(id, name),
	}

	log.L().Info("file added",
		zap.String("file", path),
		zap.Int("size_in_binary", e.Size),
		zap.Int("size_in_source", len(e.Array)),
		zap.String("increase", fmt.Sprintf("%.2fx", e.Increase())))

	return e, nil
}

// Registration returns the statement, placed in the manager constructor, that
// maps key to a view over the array arrayName. Later registrations of the
// same key replace earlier ones.
func Registration(key, arrayName string) string {
	return fmt.Sprintf("  resources_.insert_or_assign(\"%s\", std::string_view(reinterpret_cast<const char*>(%s), array_size(%s)));\n",
		key, arrayName, arrayName)
}
