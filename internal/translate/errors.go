package translate

import (
	"errors"

	"bem-translator/internal/graph"
	"bem-translator/internal/workspace"
)

var (
	ErrNoHandler           = errors.New("no translation handler registered")
	ErrUnresolvedReference = errors.New("required reference could not be resolved")
	ErrCycle               = graph.ErrCycle
	ErrDepthExceeded       = errors.New("translation depth limit exceeded")
)

// Diagnostic codes recorded by the translators.
const (
	CodeUntranslated        = "untranslated"
	CodeTranslationFailed   = "translation_failed"
	CodeUnresolvedReference = "unresolved_reference"
	CodeUnresolvedOptional  = "unresolved_optional_reference"
	CodeCycleDetected       = "cycle_detected"
	CodeDepthExceeded       = "depth_exceeded"
	CodeUniqueFolded        = "unique_folded"
	CodeDuplicateName       = "duplicate_name"
)

// codeFor classifies a top-level failure. Cycles and the depth bound win
// over the reference failures they cause; a reference failure wins over its
// own cause so the parent object is reported, not the dependency.
func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrCycle):
		return CodeCycleDetected
	case errors.Is(err, ErrDepthExceeded):
		return CodeDepthExceeded
	case errors.Is(err, ErrUnresolvedReference):
		return CodeUnresolvedReference
	case errors.Is(err, workspace.ErrDuplicateName):
		return CodeDuplicateName
	case errors.Is(err, ErrNoHandler):
		return CodeUntranslated
	default:
		return CodeTranslationFailed
	}
}
