package ports

import "go.trai.ch/fwbom/internal/core/domain"

// Hasher computes content digests of package artifacts.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// DigestFile returns the SHA-256 digest of the file at path, consulting cache first.
	// Reads are bounded and retried according to policy.
	DigestFile(path string, policy domain.ReadPolicy, cache DigestCache) (domain.Hash, error)
}

// DigestCache remembers artifact digests for the duration of one run.
type DigestCache interface {
	Get(key uint64) (domain.Hash, bool)
	Add(key uint64, h domain.Hash)
}
