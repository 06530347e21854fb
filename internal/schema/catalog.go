package schema

import (
	"bem-translator/internal/common"
	"bem-translator/internal/match"
)

// Catalog is the read-only set of record types available to a Workspace.
// A Catalog is safe for concurrent use once built.
type Catalog struct {
	version string
	types   []*RecordType
	byName  map[string]*RecordType
}

// NewCatalog builds a catalog from record type descriptors. Later types with
// a name already present stay listed in Types (so Validate can report them)
// but are not reachable through lookups.
func NewCatalog(version string, types ...RecordType) *Catalog {
	c := &Catalog{
		version: version,
		types:   make([]*RecordType, 0, len(types)),
		byName:  make(map[string]*RecordType, len(types)),
	}

	for i := range types {
		rt := types[i]
		rt.buildIndex()
		c.types = append(c.types, &rt)

		key := common.FoldKey(rt.Name)
		if _, exists := c.byName[key]; !exists {
			c.byName[key] = &rt
		}
	}

	return c
}

// Version returns the catalog file version.
func (c *Catalog) Version() string {
	return c.version
}

// Type returns the record type with the given name.
func (c *Catalog) Type(name string) (*RecordType, bool) {
	rt, ok := c.byName[common.FoldKey(name)]
	return rt, ok
}

// Types returns every record type in catalog order.
func (c *Catalog) Types() []*RecordType {
	out := make([]*RecordType, len(c.types))
	copy(out, c.types)

	return out
}

// TypeNames returns every record type name in catalog order.
func (c *Catalog) TypeNames() []string {
	names := make([]string, len(c.types))
	for i, rt := range c.types {
		names[i] = rt.Name
	}

	return names
}

// FieldIndex returns the position of fieldName within recordType.
func (c *Catalog) FieldIndex(recordType, fieldName string) (int, bool) {
	rt, ok := c.Type(recordType)
	if !ok {
		return 0, false
	}

	return rt.FieldIndex(fieldName)
}

// IsExtensible reports whether recordType carries a repeating group.
func (c *Catalog) IsExtensible(recordType string) bool {
	rt, ok := c.Type(recordType)
	return ok && rt.IsExtensible()
}

// IsUniqueType reports whether at most one record (and one model object)
// of recordType may exist.
func (c *Catalog) IsUniqueType(recordType string) bool {
	rt, ok := c.Type(recordType)
	return ok && rt.Unique
}

// Suggest returns up to limit known type names close to name.
func (c *Catalog) Suggest(name string, limit int) []string {
	return match.Suggest(name, c.TypeNames(), limit)
}
