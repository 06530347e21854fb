// Package translate implements the Translator Core: it converts a Building
// Model into a Workspace (forward) and a Workspace into a Building Model
// (reverse).
//
// Both directions dispatch each source object to the handler registered for
// its type, memoize the result by source identity and let handlers request
// related objects through their context. Requests recurse through the Core,
// never from handler to handler, so every source object is translated at most
// once per run and each produced record or object is inserted exactly once.
//
// Failures never abort a run. An object whose handler fails is left out of
// the output and a diagnostic naming it is recorded; translation then
// continues with the next object.
package translate
