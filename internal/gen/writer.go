package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// CreateOutput opens path for writing a template, creating parent
// directories as needed. The caller closes the file.
func CreateOutput(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", path, err)
	}

	return f, nil
}

// WriteOutput replaces the content of path with data. A failed close is
// reported like a failed write.
func WriteOutput(path string, data []byte) (err error) {
	f, err := CreateOutput(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing output file %s: %w", path, cerr))
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}

	return nil
}
