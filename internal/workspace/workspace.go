package workspace

import (
	"fmt"
	"slices"
	"strconv"

	"bem-translator/internal/common"
	"bem-translator/internal/schema"
)

type nameKey struct {
	typ  string
	name string
}

func keyOf(recordType, name string) nameKey {
	return nameKey{typ: common.FoldKey(recordType), name: common.FoldKey(name)}
}

// Workspace is an append-only, ordered collection of records. Names are
// unique per record type, compared case-insensitively.
type Workspace struct {
	catalog  *schema.Catalog
	records  []*Record
	byName   map[nameKey]*Record
	reserved map[nameKey]struct{}
}

// New returns an empty Workspace over catalog.
func New(catalog *schema.Catalog) *Workspace {
	return &Workspace{
		catalog:  catalog,
		byName:   make(map[nameKey]*Record),
		reserved: make(map[nameKey]struct{}),
	}
}

// Catalog returns the schema catalog of the workspace.
func (ws *Workspace) Catalog() *schema.Catalog {
	return ws.catalog
}

// NewRecord creates a detached record of recordType.
func (ws *Workspace) NewRecord(recordType string) (*Record, error) {
	rt, ok := ws.catalog.Type(recordType)
	if !ok {
		err := fmt.Errorf("%w %q", ErrUnknownType, recordType)
		if s := ws.catalog.Suggest(recordType, 3); len(s) > 0 {
			err = fmt.Errorf("%w (did you mean %s?)", err, s[0])
		}

		return nil, err
	}

	return newRecord(rt), nil
}

// Add appends rec and seals it.
func (ws *Workspace) Add(rec *Record) error {
	if rec.sealed {
		return fmt.Errorf("%s: %w", rec.Description(), ErrSealed)
	}

	rt, ok := ws.catalog.Type(rec.rt.Name)
	if !ok || rt != rec.rt {
		return fmt.Errorf("%w %q", ErrUnknownType, rec.rt.Name)
	}

	if rt.Named {
		if rec.name == "" {
			return fmt.Errorf("%s: %w", rt.Name, ErrMissingName)
		}

		key := keyOf(rt.Name, rec.name)
		if existing, dup := ws.byName[key]; dup {
			return fmt.Errorf("%s: %w: already used by record %d", rec.Description(), ErrDuplicateName, existing.index)
		}

		ws.byName[key] = rec
		delete(ws.reserved, key)
	}

	rec.index = len(ws.records)
	rec.sealed = true
	ws.records = append(ws.records, rec)

	return nil
}

// Records returns every record in insertion order.
func (ws *Workspace) Records() []*Record {
	return slices.Clone(ws.records)
}

// RecordsOfType returns the records of recordType in insertion order.
func (ws *Workspace) RecordsOfType(recordType string) []*Record {
	key := common.FoldKey(recordType)

	var out []*Record

	for _, r := range ws.records {
		if common.FoldKey(r.rt.Name) == key {
			out = append(out, r)
		}
	}

	return out
}

// Lookup finds a named record.
func (ws *Workspace) Lookup(recordType, name string) (*Record, bool) {
	r, ok := ws.byName[keyOf(recordType, name)]
	return r, ok
}

// LookupAny finds name among several record types, trying them in order.
func (ws *Workspace) LookupAny(name string, recordTypes ...string) (*Record, bool) {
	for _, t := range recordTypes {
		if r, ok := ws.Lookup(t, name); ok {
			return r, true
		}
	}

	return nil, false
}

// Reserve claims name for a record of recordType that will be added later.
// It reports false when the name is taken or already reserved.
func (ws *Workspace) Reserve(recordType, name string) bool {
	key := keyOf(recordType, name)
	if !ws.available(key) {
		return false
	}

	ws.reserved[key] = struct{}{}

	return true
}

// Release drops a reservation made by Reserve.
func (ws *Workspace) Release(recordType, name string) {
	delete(ws.reserved, keyOf(recordType, name))
}

// UniqueName returns base when it is free for recordType, otherwise the first
// free "base N" with N counting from 1.
func (ws *Workspace) UniqueName(recordType, base string) string {
	if ws.available(keyOf(recordType, base)) {
		return base
	}

	for n := 1; ; n++ {
		name := base + " " + strconv.Itoa(n)
		if ws.available(keyOf(recordType, name)) {
			return name
		}
	}
}

// Len returns the number of records.
func (ws *Workspace) Len() int {
	return len(ws.records)
}

func (ws *Workspace) available(key nameKey) bool {
	if _, taken := ws.byName[key]; taken {
		return false
	}

	_, reserved := ws.reserved[key]

	return !reserved
}
