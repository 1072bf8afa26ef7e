// Package opkg reads opkg package index files produced by the firmware build.
package opkg

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxLineSize = 1 << 20

// Parse splits an index into metadata blocks. Blocks are separated by blank lines;
// lines starting with whitespace continue the previous field.
func Parse(r io.Reader, index string) ([]domain.RawBlock, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		blocks  []domain.RawBlock
		current []domain.Field
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		blocks = append(blocks, domain.RawBlock{
			Fields:      current,
			Source:      domain.SourceRef{Index: index, Ordinal: len(blocks)},
			ArtifactDir: filepath.Dir(index),
		})
		current = nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.TrimSpace(line) == "" || line == "@@":
			flush()
		case line[0] == ' ' || line[0] == '\t':
			if len(current) > 0 {
				last := &current[len(current)-1]
				last.Value += "\n" + strings.TrimSpace(line)
			}
		default:
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			current = append(current, domain.Field{
				Key:   strings.TrimSpace(key),
				Value: strings.TrimSpace(value),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan package index"), "path", index)
	}
	flush()

	return blocks, nil
}
