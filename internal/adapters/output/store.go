// Package output writes run artifacts: the SBOM document and the list of packages without CPE.
package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/zerr"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// MissingCPESuffix is appended to the document path to name the missing-CPE list.
const MissingCPESuffix = ".nocpe.json"

var _ ports.DocumentStore = (*Store)(nil)

// Store implements ports.DocumentStore on the local file system.
type Store struct {
	stdout io.Writer
	mu     sync.Mutex
}

// NewStore creates a Store that writes "-" paths to stdout.
func NewStore(stdout io.Writer) *Store {
	return &Store{stdout: stdout}
}

// WriteBOM writes the document as indented JSON.
func (s *Store) WriteBOM(path string, bom *domain.BOM) (string, error) {
	return s.write(path, bom)
}

// WriteMissingCPE writes the names as a JSON array.
func (s *Store) WriteMissingCPE(path string, names []string) (string, error) {
	if names == nil {
		names = []string{}
	}
	return s.write(path, names)
}

func (s *Store) write(path string, v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", zerr.Wrap(err, "failed to marshal document")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if path == StdoutPath {
		if _, err := s.stdout.Write(buf.Bytes()); err != nil {
			return "", zerr.Wrap(err, "failed to write document to stdout")
		}
		return path, nil
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create temporary file"), "path", dir)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return "", zerr.With(zerr.Wrap(err, "failed to write document"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write document"), "path", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil { //nolint:gosec // Documents are meant to be shared
		return "", zerr.With(zerr.Wrap(err, "failed to set document permissions"), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to move document into place"), "path", path)
	}

	return path, nil
}
