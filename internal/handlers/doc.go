// Package handlers holds the per-type translation handlers for the record
// types of the default catalog.
//
// Most types are plain attribute copies described by a recordMap: a list of
// attribute/field pairs plus relationship/reference pairs. Types with
// extensible groups (Construction, Schedule:Compact) and the no-op OS:Null
// have hand-written handlers.
//
// Register every handler with:
//
//	reg := translate.NewRegistry(handlers.Module{})
package handlers
