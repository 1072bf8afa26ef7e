package fs

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/fwbom/internal/core/domain"
)

// Retry runs op until it succeeds, fails permanently, or the policy is exhausted.
// Missing files, permission errors and size violations are permanent.
func Retry(policy domain.RetryPolicy, op func() error) error {
	attempts := max(policy.Attempts, 1)

	var err error
	for i := range attempts {
		if err = op(); err == nil || isPermanent(err) {
			return err
		}
		if i < attempts-1 && policy.Backoff > 0 {
			time.Sleep(policy.Backoff * time.Duration(i+1))
		}
	}
	return err
}

func isPermanent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, domain.ErrArtifactNotFound) ||
		errors.Is(err, domain.ErrArtifactTooLarge)
}

// ReadFile reads the whole file at path, retrying transient failures.
func ReadFile(path string, policy domain.RetryPolicy) ([]byte, error) {
	var data []byte
	err := Retry(policy, func() error {
		var readErr error
		data, readErr = os.ReadFile(path) //nolint:gosec // Path comes from the build tree walk
		return readErr
	})
	return data, err
}
