package domain

import (
	"fmt"
	"slices"
)

// WarningKind classifies a non-fatal problem found during a run.
type WarningKind string

const (
	// WarningExtraction marks a package field that was missing or malformed and got defaulted or skipped.
	WarningExtraction WarningKind = "ExtractionWarning"
	// WarningEdgeResolution marks a declared dependency that could not be turned into an edge.
	WarningEdgeResolution WarningKind = "EdgeResolutionWarning"
	// WarningMergeConflict marks a duplicate package whose version disagreed with the first one seen.
	WarningMergeConflict WarningKind = "MergeConflictWarning"
	// WarningConfiguration marks a requested option that could not be honoured for the target.
	WarningConfiguration WarningKind = "ConfigurationWarning"
)

// Warning is a single recorded problem. Warnings are never counted or collapsed.
type Warning struct {
	Kind    WarningKind
	Package string
	Field   string
	Detail  string
}

// String renders the warning as one log line.
func (w Warning) String() string {
	pkg := w.Package
	if pkg == "" {
		pkg = "<unnamed>"
	}
	if w.Field == "" {
		return fmt.Sprintf("%s: %s: %s", w.Kind, pkg, w.Detail)
	}
	return fmt.Sprintf("%s: %s [%s]: %s", w.Kind, pkg, w.Field, w.Detail)
}

// NewWarningFromError builds a warning from an error annotated with package and field metadata.
func NewWarningFromError(kind WarningKind, err error) Warning {
	return Warning{
		Kind:    kind,
		Package: ErrorField(err, "package"),
		Field:   ErrorField(err, "field"),
		Detail:  err.Error(),
	}
}

// Report collects everything a run wants to tell the user besides the document itself.
type Report struct {
	Warnings []Warning
	// MissingCPE lists component names without a CPE identifier, sorted.
	MissingCPE []string
	// Excluded lists component names dropped by configuration, sorted.
	Excluded []string
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add appends warnings in the order they were produced.
func (r *Report) Add(ws ...Warning) {
	r.Warnings = append(r.Warnings, ws...)
}

// Of returns the warnings of the given kind.
func (r *Report) Of(kind WarningKind) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

// AddExcluded records a package dropped by configuration.
func (r *Report) AddExcluded(name string) {
	r.Excluded = insertSorted(r.Excluded, name)
}

// AddMissingCPE records a package without a CPE identifier.
func (r *Report) AddMissingCPE(name string) {
	r.MissingCPE = insertSorted(r.MissingCPE, name)
}

func insertSorted(list []string, s string) []string {
	i, found := slices.BinarySearch(list, s)
	if found {
		return list
	}
	return slices.Insert(list, i, s)
}
