// Package workspace implements the Simulation-Input Workspace: an ordered,
// append-only collection of typed records whose positional fields reference
// each other by name.
//
// Record types come from a schema.Catalog. A record is mutable until it is
// added to a Workspace; from then on it is sealed.
//
// The package also carries the textual form of a Workspace (Write, Parse),
// a reference-integrity check (CheckReferences) and an order-insensitive
// content fingerprint (Digest).
package workspace
