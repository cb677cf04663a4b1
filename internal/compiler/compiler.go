package compiler

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/xll-gen/resources-compiler/pkg/log"
)

// ErrDuplicateIdentifier is returned by Compile in strict mode when two inputs
// sanitize to the same identifier.
var ErrDuplicateIdentifier = errors.New("duplicate resource identifier")

// Options controls the compilation pass.
type Options struct {
	// Strict turns identifier collisions into errors. By default they are
	// logged and the later registration wins at runtime.
	Strict bool
}

// Result is the ordered output of a compilation pass.
type Result struct {
	// Entries holds one Entry per non-empty input, in input order.
	Entries []Entry
	// Skipped lists the inputs that were empty.
	Skipped []string
	// SourceSize is the sum of Entry.SourceSize over Entries.
	SourceSize int
}

// Compile builds an Entry for every path, strictly in order. Empty files are
// skipped with a warning. The first read failure aborts the pass.
func Compile(paths []string, opts Options) (*Result, error) {
	res := &Result{Entries: make([]Entry, 0, len(paths))}
	seen := make(map[string]string, len(paths))
	arrays := make(map[string]bool, len(paths))

	// Arrays share one namespace, so a taken name gets a numeric suffix. The
	// lookup key stays the identifier.
	arrayName := func(id string) string {
		name := id
		for i := 1; arrays[name]; i++ {
			name = id + "_" + strconv.Itoa(i)
		}
		return name
	}

	for _, path := range paths {
		e, err := buildEntry(path, arrayName)
		if errors.Is(err, ErrEmptyFile) {
			log.L().Warn("empty file skipped", zap.String("file", path))
			res.Skipped = append(res.Skipped, path)
			continue
		}
		if err != nil {
			return nil, err
		}

		if prev, ok := seen[e.Identifier]; ok {
			if opts.Strict {
				return nil, fmt.Errorf("%w: %q from %s and %s", ErrDuplicateIdentifier, e.Identifier, prev, path)
			}
			log.L().Warn("resource name collision, the later file wins",
				zap.String("identifier", e.Identifier),
				zap.String("previous", prev),
				zap.String("file", path))
		}
		seen[e.Identifier] = path
		arrays[e.ArrayName] = true

		res.SourceSize += e.SourceSize()
		res.Entries = append(res.Entries, e)
	}

	return res, nil
}
