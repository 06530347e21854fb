// Package match normalizes loosely spelled names and ranks candidates for
// "did you mean" suggestions.
package match
