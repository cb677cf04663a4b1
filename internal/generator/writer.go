package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xll-gen/resources-compiler/pkg/log"
)

// WriteFile replaces the file at path with doc.
//
// The content goes to a uniquely named temporary file next to path first,
// which is then renamed over path, so readers never see a half written file.
// On failure the temporary file is removed and path is left untouched.
func WriteFile(path string, doc string) (err error) {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("can't open file for write operation: %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.WriteString(doc); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	log.L().Info("file generated", zap.String("file", path), zap.Int("size", len(doc)))
	return nil
}
