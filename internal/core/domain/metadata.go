package domain

import "strings"

// Field is one key-value pair of a package metadata block.
type Field struct {
	Key   string
	Value string
}

// RawBlock is a package metadata block exactly as the build system wrote it.
type RawBlock struct {
	Fields []Field
	Source SourceRef
	// ArtifactDir is the directory that relative artifact paths are resolved against.
	ArtifactDir string
}

// Get returns the first value stored under key, matched case-insensitively.
func (b *RawBlock) Get(key string) (string, bool) {
	for _, f := range b.Fields {
		if strings.EqualFold(f.Key, key) {
			return f.Value, true
		}
	}
	return "", false
}

// PackageMetadata is the decoded form of a RawBlock.
// Nil pointers mark fields the block did not declare or declared empty.
type PackageMetadata struct {
	Name         *string
	Version      *string
	License      *string
	Origin       *string
	Maintainer   *string
	CPE          *string
	Architecture *string
	Filename     *string
	Depends      *string
}
