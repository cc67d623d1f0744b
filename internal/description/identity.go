package description

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// namespaceCatalogID is the fixed UUID namespace for deriving catalog
// identities from extension names, generated with UUID v5 from the URL
// namespace and a canonical string so the derivation is reproducible by
// third parties.
var namespaceCatalogID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("slicer.org/extension-catalog/v1"))

// ExtensionName derives the extension identity from a description file
// path: the base name without its suffix. The identity is used only for
// failure attribution and catalog identity; it is not validated.
func ExtensionName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CatalogID returns a deterministic UUID v5 for an extension name.
// The same extension always maps to the same ID across runs and hosts,
// so catalog tooling can correlate validation reports without relying
// on file paths. Names differing only in case map to the same ID.
func CatalogID(extension string) uuid.UUID {
	return uuid.NewSHA1(namespaceCatalogID, []byte(strings.ToLower(extension)))
}
