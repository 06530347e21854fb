// Package model provides the typed Building Model: a container that owns
// ModelObjects identified by stable handles, each carrying typed attributes,
// optional extensible groups and object-valued relationships to other
// objects of the same Model.
//
// The set of object types is closed (see Type); per-type metadata (Info)
// declares which attributes and relationship slots a type accepts, so
// mutations are checked at the point they happen.
package model
