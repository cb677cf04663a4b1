package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/xll-gen/resources-compiler/internal/compiler"
	"github.com/xll-gen/resources-compiler/internal/config"
	"github.com/xll-gen/resources-compiler/pkg/log"
)

const (
	headerExt = ".h"
	sourceExt = ".cpp"
)

// OutputPaths derives the header and source paths from an output stem by
// replacing its extension, if any, with .h and .cpp.
func OutputPaths(stem string) (header, source string) {
	base := trimExt(stem)
	return base + headerExt, base + sourceExt
}

// trimExt drops the extension of the last path element. A leading dot, as in
// ".resources", does not start an extension.
func trimExt(p string) string {
	ext := filepath.Ext(p)
	name := filepath.Base(p)
	if ext == "" || ext == name {
		return p
	}
	return strings.TrimSuffix(p, ext)
}

// Generate runs a full compilation for cfg.
//
// Stale outputs are deleted before any source is read, so a failed run leaves
// no outdated header/source pair behind. Every source is then compiled in
// order, and the header and source documents are written.
//
// Parameters:
//   - cfg: A validated configuration.
//
// Returns:
//   - error: An error if any source cannot be read or any output cannot be written.
func Generate(cfg *config.Config) error {
	headerPath, sourcePath := OutputPaths(cfg.Output)

	if dir := filepath.Dir(headerPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := removeStale("header", headerPath); err != nil {
		return err
	}
	if err := removeStale("source", sourcePath); err != nil {
		return err
	}

	res, err := compiler.Compile(cfg.Sources, compiler.Options{Strict: cfg.Strict})
	if err != nil {
		return err
	}

	docs, err := Assemble(res.Entries, filepath.Base(headerPath), res.SourceSize)
	if err != nil {
		return err
	}

	if err := WriteFile(headerPath, docs.Header); err != nil {
		return err
	}
	if err := WriteFile(sourcePath, docs.Source); err != nil {
		return err
	}

	log.L().Debug("compilation finished",
		zap.Int("resources", len(res.Entries)),
		zap.Int("skipped", len(res.Skipped)))
	return nil
}

// removeStale deletes an existing output file.
func removeStale(kind, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	log.L().Info(fmt.Sprintf("output %s file exists: we are going to delete it", kind), zap.String("file", path))
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}
