package modelfile

import "errors"

var (
	ErrUnknownType      = errors.New("unknown object type")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrInvalidValue     = errors.New("invalid value")
	ErrUnresolvedName   = errors.New("unresolved object name")
)
