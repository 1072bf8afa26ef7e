package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrBuildDirNotFound is returned when the build directory does not exist or is not a directory.
	ErrBuildDirNotFound = zerr.New("build directory not found")

	// ErrBuildDirUnreadable is returned when the build directory cannot be listed.
	ErrBuildDirUnreadable = zerr.New("build directory unreadable")

	// ErrNoPackages is returned when no package survives discovery and extraction.
	ErrNoPackages = zerr.New("no packages found")

	// ErrMissingCPE is returned when CPE identifiers are required and some packages lack one.
	ErrMissingCPE = zerr.New("packages without CPE identifier")

	// ErrConfigReadFailed is returned when a configuration file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a configuration file is malformed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingField is returned when a package block lacks a required field.
	ErrMissingField = zerr.New("missing required field")

	// ErrArtifactNotFound is returned when a package artifact is absent or not a regular file.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrArtifactTooLarge is returned when a package artifact exceeds the configured size bound.
	ErrArtifactTooLarge = zerr.New("artifact exceeds size limit")

	// ErrIndexUnreadable is returned when a package index file cannot be read.
	ErrIndexUnreadable = zerr.New("package index unreadable")
)

var fatalConfigErrors = []error{
	ErrBuildDirNotFound,
	ErrBuildDirUnreadable,
	ErrNoPackages,
	ErrMissingCPE,
	ErrConfigReadFailed,
	ErrConfigParseFailed,
}

// IsFatalConfig reports whether err aborts a run before any document is produced.
func IsFatalConfig(err error) bool {
	for _, target := range fatalConfigErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ErrorField returns the string metadata stored under key on the outermost zerr error in the chain.
func ErrorField(err error, key string) string {
	for err != nil {
		var zErr *zerr.Error
		if !errors.As(err, &zErr) {
			return ""
		}
		if v, ok := zErr.Metadata()[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
		err = zErr.Unwrap()
	}
	return ""
}
