package model

import (
	"errors"

	"bem-translator/internal/graph"
)

var (
	ErrUnknownType      = errors.New("unknown model object type")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrKindMismatch     = errors.New("attribute value has the wrong kind")
	ErrInvalidChoice    = errors.New("value is not one of the allowed choices")
	ErrNotFinite        = errors.New("number is not finite")
	ErrUnknownSlot      = errors.New("unknown relationship slot")
	ErrTargetType       = errors.New("object type not accepted by relationship slot")
	ErrNotCollection    = errors.New("relationship slot is not a collection")
	ErrNoGroups         = errors.New("type has no extensible groups")
	ErrGroupArity       = errors.New("extensible group has the wrong number of values")
	ErrForeignObject    = errors.New("object belongs to another model")
	ErrAlreadyOwned     = errors.New("object is already owned by a model")
	ErrUniqueExists     = errors.New("model already holds the unique instance of this type")
	ErrCycle            = graph.ErrCycle
)
