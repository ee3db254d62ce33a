package fswriter

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hailam/tokenfiles/internal/logging"
	"github.com/hailam/tokenfiles/internal/ports"
)

// DiskWriter persists content under root/buildPath. Each file is written to a
// temporary sibling and renamed into place, so a destination is never left
// half written.
type DiskWriter struct {
	dir    string
	logger *slog.Logger
}

// New returns a writer rooted at root joined with buildPath.
func New(root, buildPath string, logger *slog.Logger) ports.FileWriter {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DiskWriter{dir: filepath.Join(root, filepath.FromSlash(buildPath)), logger: logger}
}

// Write creates parent directories as needed and replaces the destination.
func (w *DiskWriter) Write(destination string, content []byte) error {
	path, err := w.resolve(destination)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", destination, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", destination, err)
	}
	tmpName := tmp.Name()

	bw := bufio.NewWriter(tmp)
	_, writeErr := bw.Write(content)
	if err := errors.Join(writeErr, bw.Flush(), tmp.Close()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", destination, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move %s into place: %w", destination, err)
	}

	w.logger.Debug("created file", "path", path, "bytes", len(content))
	return nil
}

func (w *DiskWriter) resolve(destination string) (string, error) {
	if destination == "" {
		return "", errors.New("destination is empty")
	}
	clean := filepath.Clean(filepath.FromSlash(destination))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("destination %s escapes the build directory", destination)
	}
	return filepath.Join(w.dir, clean), nil
}
