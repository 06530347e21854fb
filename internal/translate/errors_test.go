package translate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"bem-translator/internal/workspace"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no handler", fmt.Errorf("x: %w", ErrNoHandler), CodeUntranslated},
		{"reference to untranslatable", fmt.Errorf("%w: f: %w", ErrUnresolvedReference, ErrNoHandler), CodeUnresolvedReference},
		{"reference through cycle", fmt.Errorf("%w: f: %w", ErrUnresolvedReference, ErrCycle), CodeCycleDetected},
		{"depth", fmt.Errorf("%w: f: %w", ErrUnresolvedReference, ErrDepthExceeded), CodeDepthExceeded},
		{"duplicate", fmt.Errorf("x: %w", workspace.ErrDuplicateName), CodeDuplicateName},
		{"other", assert.AnError, CodeTranslationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeFor(tt.err))
		})
	}
}
