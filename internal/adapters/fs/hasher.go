package fs

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes artifact digests.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// DigestFile streams the file at path through SHA-256.
// The cache key is the xxhash of the cleaned path, size and modification time, so a
// rewritten artifact is hashed again.
func (h *Hasher) DigestFile(path string, policy domain.ReadPolicy, cache ports.DigestCache) (domain.Hash, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.Hash{}, zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "failed to stat artifact"), "path", path)
		}
		return domain.Hash{}, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}
	if !info.Mode().IsRegular() {
		return domain.Hash{}, zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "artifact is not a regular file"), "path", path)
	}
	if policy.MaxSize > 0 && info.Size() > policy.MaxSize {
		return domain.Hash{}, zerr.With(zerr.Wrap(domain.ErrArtifactTooLarge, "refusing to hash artifact"), "path", path)
	}

	key := fingerprint(path, info)
	if cache != nil {
		if cached, ok := cache.Get(key); ok {
			return cached, nil
		}
	}

	var sum domain.Hash
	err = Retry(policy.Retry, func() error {
		var hashErr error
		sum, hashErr = h.hashFile(path, policy.MaxSize)
		return hashErr
	})
	if err != nil {
		return domain.Hash{}, err
	}

	if cache != nil {
		cache.Add(key, sum)
	}
	return sum, nil
}

func (h *Hasher) hashFile(path string, maxSize int64) (domain.Hash, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Hash{}, zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var r io.Reader = f
	if maxSize > 0 {
		r = io.LimitReader(f, maxSize+1)
	}

	digest := sha256.New()
	n, err := io.Copy(digest, r)
	if err != nil {
		return domain.Hash{}, zerr.With(zerr.Wrap(err, "failed to hash artifact content"), "path", path)
	}
	if maxSize > 0 && n > maxSize {
		return domain.Hash{}, zerr.With(zerr.Wrap(domain.ErrArtifactTooLarge, "artifact grew while hashing"), "path", path)
	}

	return domain.Hash{
		Algorithm: domain.HashAlgorithmSHA256,
		Value:     hex.EncodeToString(digest.Sum(nil)),
	}, nil
}

func fingerprint(path string, info iofs.FileInfo) uint64 {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(filepath.Clean(path))
	_, _ = hasher.Write([]byte{0})

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(info.Size()))             //nolint:gosec // Size is non-negative
	binary.LittleEndian.PutUint64(buf[8:], uint64(info.ModTime().UnixNano())) //nolint:gosec // Bit pattern only
	_, _ = hasher.Write(buf[:])

	return hasher.Sum64()
}
