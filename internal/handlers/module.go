package handlers

import (
	"bem-translator/internal/model"
	"bem-translator/internal/translate"
)

// Module registers the handlers of every default catalog type. OS:SpaceType
// has no handler and is reported as untranslated.
type Module struct{}

// Register implements translate.Module.
func (Module) Register(r *translate.Registry) {
	for _, rm := range recordMaps {
		r.RegisterForward(rm.modelType, rm.recordType, rm.forward)
		r.RegisterReverse(rm.recordType, rm.modelType, rm.reverse)
	}

	r.RegisterForward(model.TypeConstruction, "Construction", constructionForward)
	r.RegisterReverse("Construction", model.TypeConstruction, constructionReverse)
	r.RegisterForward(model.TypeScheduleCompact, "Schedule:Compact", compactForward)
	r.RegisterReverse("Schedule:Compact", model.TypeScheduleCompact, compactReverse)
	r.RegisterForward(model.TypeNull, "", nullForward)
}
