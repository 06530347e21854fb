package translate

import (
	"context"
	"log/slog"
	"slices"

	"bem-translator/internal/common"
	"bem-translator/internal/ctxlog"
	"bem-translator/internal/model"
)

// DefaultMaxDepth bounds nested translation requests.
const DefaultMaxDepth = 64

// Options configure one translation run.
type Options struct {
	// MaxDepth is the deepest chain of nested handler invocations allowed.
	MaxDepth int
	// Roots restricts forward top-level iteration to these model types.
	// Objects of other types are translated only when referenced.
	Roots []model.Type
	// RecordRoots is the reverse counterpart of Roots.
	RecordRoots []string
	Logger      *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDepth sets the recursion bound; values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxDepth = n
		}
	}
}

// WithRoots restricts forward top-level iteration to the given model types.
func WithRoots(types ...model.Type) Option {
	return func(o *Options) {
		o.Roots = append(o.Roots, types...)
	}
}

// WithRecordRoots restricts reverse top-level iteration to the given record types.
func WithRecordRoots(recordTypes ...string) Option {
	return func(o *Options) {
		o.RecordRoots = append(o.RecordRoots, recordTypes...)
	}
}

// WithLogger sets the logger used when no context logger is supplied.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) Options {
	o := Options{MaxDepth: DefaultMaxDepth, Logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) isRoot(t model.Type) bool {
	return len(o.Roots) == 0 || slices.Contains(o.Roots, t)
}

func (o Options) isRecordRoot(recordType string) bool {
	if len(o.RecordRoots) == 0 {
		return true
	}

	key := common.FoldKey(recordType)

	return slices.ContainsFunc(o.RecordRoots, func(s string) bool { return common.FoldKey(s) == key })
}

// loggerFrom prefers a logger carried by ctx over fallback.
func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l := ctxlog.FromContext(ctx); l != slog.Default() || fallback == nil {
		return l
	}

	return fallback
}
