// Package graph holds the dependency ordering shared by the model and
// workspace closures.
package graph
