package description

import (
	"testing"

	"github.com/google/uuid"
)

// TestExtensionName_StripsPathAndSuffix tests identity derivation
func TestExtensionName_StripsPathAndSuffix(t *testing.T) {
	cases := map[string]string{
		"./index/FooExtension.s4ext": "FooExtension",
		"FooExtension.s4ext":         "FooExtension",
		"/abs/path/Bar.s4ext":        "Bar",
		"NoSuffix":                   "NoSuffix",
		"Dotted.Name.s4ext":          "Dotted.Name",
	}

	for path, expected := range cases {
		if got := ExtensionName(path); got != expected {
			t.Errorf("ExtensionName(%q) = %q, expected %q", path, got, expected)
		}
	}
}

// TestCatalogID_Deterministic verifies the same name always produces the
// same identity
func TestCatalogID_Deterministic(t *testing.T) {
	first := CatalogID("FooExtension")
	second := CatalogID("FooExtension")

	if first != second {
		t.Errorf("Expected deterministic ID, got %s and %s", first, second)
	}
	if first == uuid.Nil {
		t.Error("Expected non-nil catalog ID")
	}
}

// TestCatalogID_CaseInsensitive verifies identities are case-insensitive
func TestCatalogID_CaseInsensitive(t *testing.T) {
	if CatalogID("FooExtension") != CatalogID("fooextension") {
		t.Error("Expected case-insensitive catalog IDs to match")
	}
}

// TestCatalogID_DistinctNames verifies different names produce different IDs
func TestCatalogID_DistinctNames(t *testing.T) {
	if CatalogID("FooExtension") == CatalogID("BarExtension") {
		t.Error("Expected distinct catalog IDs for distinct names")
	}
}
