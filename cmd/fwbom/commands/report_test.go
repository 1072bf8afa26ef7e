package commands

import (
	"strings"
	"testing"

	"go.trai.ch/fwbom/internal/core/domain"
)

func TestRenderReport(t *testing.T) {
	if got := renderReport(domain.NewReport()); got != "" {
		t.Errorf("empty report rendered %q", got)
	}

	r := domain.NewReport()
	r.Add(
		domain.Warning{Kind: domain.WarningEdgeResolution, Package: "busybox", Field: "depends", Detail: `dependency "libghost" not found`},
		domain.Warning{Kind: domain.WarningExtraction, Field: "name", Detail: "package skipped"},
	)
	r.AddMissingCPE("busybox")
	r.AddExcluded("kmod-debug")

	got := renderReport(r)
	for _, want := range []string{
		"2 warnings",
		"EdgeResolutionWarning (1)",
		"ExtractionWarning (1)",
		`busybox [depends]: dependency "libghost" not found`,
		"<unnamed> [name]: package skipped",
		"1 packages without CPE identifier",
		"excluded: kmod-debug",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "ExtractionWarning") > strings.Index(got, "EdgeResolutionWarning") {
		t.Errorf("extraction warnings should be listed first:\n%s", got)
	}
}

func TestRenderReport_ConfigurationWarning(t *testing.T) {
	r := domain.NewReport()
	r.Add(domain.Warning{
		Kind:    domain.WarningConfiguration,
		Package: "openwrt-ath79-generic",
		Field:   "installed_only",
		Detail:  "no build configuration found, keeping all packages",
	})

	got := renderReport(r)
	for _, want := range []string{
		"1 warnings",
		"ConfigurationWarning (1)",
		"openwrt-ath79-generic [installed_only]: no build configuration found",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}
