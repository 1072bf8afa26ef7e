package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/fwbom/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("pkg:openwrt/libc@1.2.4")
	is2 := domain.NewInternedString("pkg:openwrt/libc@1.2.4")

	if is1 != is2 {
		t.Errorf("Expected interned values to be equal for identical strings")
	}
	if is1.String() != "pkg:openwrt/libc@1.2.4" {
		t.Errorf("Unexpected String() result %q", is1.String())
	}

	var zero domain.InternedString
	if !zero.IsZero() || zero.String() != "" {
		t.Errorf("Expected zero value to be empty")
	}
	if is1.IsZero() {
		t.Errorf("Expected non-zero value")
	}
}

func TestInternedString_Compare(t *testing.T) {
	a := domain.NewInternedString("a")
	b := domain.NewInternedString("b")

	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Errorf("Compare does not follow string order")
	}
}

func TestInternedStringJSON(t *testing.T) {
	type record struct {
		Ref domain.InternedString `json:"ref"`
	}

	original := record{Ref: domain.NewInternedString("pkg:openwrt/busybox@1.36.1")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"ref":"pkg:openwrt/busybox@1.36.1"}` {
		t.Errorf("Unexpected JSON %s", data)
	}

	var decoded record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if decoded.Ref != original.Ref {
		t.Errorf("Expected %q, got %q", original.Ref, decoded.Ref)
	}
}
