package workspace

import (
	"errors"

	"bem-translator/internal/graph"
)

var (
	ErrUnknownType   = errors.New("unknown record type")
	ErrUnknownField  = errors.New("unknown field")
	ErrFieldIndex    = errors.New("field index out of range")
	ErrInvalidValue  = errors.New("invalid field value")
	ErrNotExtensible = errors.New("record type is not extensible")
	ErrGroupArity    = errors.New("extensible group has the wrong number of values")
	ErrSealed        = errors.New("record is sealed")
	ErrUnnamedType   = errors.New("record type has no name field")
	ErrMissingName   = errors.New("record name is required")
	ErrDuplicateName = errors.New("duplicate record name")
	ErrCycle         = graph.ErrCycle
)
