// Package extractor turns raw package metadata blocks into component records.
package extractor

import (
	"errors"
	"path/filepath"

	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports"
	"go.trai.ch/zerr"
)

// Settings are the per-run parameters of extraction.
type Settings struct {
	Ecosystem         string
	LicenseDelimiters []string
	Read              domain.ReadPolicy
}

// Extractor builds component records. It holds no mutable state besides the
// digest cache, which is safe for concurrent use, so one Extractor may serve all workers.
type Extractor struct {
	hasher   ports.Hasher
	cache    ports.DigestCache
	settings Settings
}

// New creates an Extractor for one run.
func New(hasher ports.Hasher, cache ports.DigestCache, settings Settings) *Extractor {
	if settings.Ecosystem == "" {
		settings.Ecosystem = domain.DefaultEcosystem
	}
	return &Extractor{hasher: hasher, cache: cache, settings: settings}
}

// Extract builds the record for block. A block without a name fails with an error
// carrying package and field metadata; everything else is defaulted and reported as warnings.
func (e *Extractor) Extract(block *domain.RawBlock) (*domain.ComponentRecord, []domain.Warning, error) {
	meta := Decode(block)

	if meta.Name == nil {
		err := zerr.With(zerr.Wrap(domain.ErrMissingField, "package skipped"), "package", "")
		err = zerr.With(err, "field", "name")
		return nil, nil, zerr.With(err, "source", block.Source.Index)
	}

	var warnings []domain.Warning
	rec := &domain.ComponentRecord{
		Ecosystem:    e.settings.Ecosystem,
		Name:         *meta.Name,
		Version:      domain.UnknownVersion,
		Licenses:     []string{domain.UnspecifiedLicense},
		Origin:       meta.Origin,
		Supplier:     meta.Maintainer,
		CPE:          meta.CPE,
		Architecture: meta.Architecture,
		Source:       block.Source,
	}

	if meta.Version != nil {
		rec.Version = *meta.Version
	} else {
		warnings = append(warnings, domain.Warning{
			Kind:    domain.WarningExtraction,
			Package: rec.Name,
			Field:   "version",
			Detail:  "no version declared, recorded as " + domain.UnknownVersion,
		})
	}

	if meta.License != nil {
		rec.Licenses = domain.SplitLicenses(*meta.License, e.settings.LicenseDelimiters)
	}

	if meta.Depends != nil {
		rec.Depends = SplitDepends(*meta.Depends)
	}

	if meta.Filename != nil {
		hash, err := e.digest(block, *meta.Filename)
		if err != nil {
			warnings = append(warnings, domain.Warning{
				Kind:    domain.WarningExtraction,
				Package: rec.Name,
				Field:   "artifact",
				Detail:  err.Error(),
			})
		} else {
			rec.Hash = &hash
		}
	}

	rec.Rekey()
	return rec, warnings, nil
}

func (e *Extractor) digest(block *domain.RawBlock, filename string) (domain.Hash, error) {
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(block.ArtifactDir, filename)
	}

	hash, err := e.hasher.DigestFile(path, e.settings.Read, e.cache)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			return domain.Hash{}, zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "artifact missing, no hash recorded"), "path", path)
		}
		return domain.Hash{}, err
	}
	return hash, nil
}
