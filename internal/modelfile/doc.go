// Package modelfile reads and writes Building Models as HCL documents.
//
// A document is a sequence of object blocks, one per model object:
//
//	object "OS:Schedule:Constant" "Always On" {
//	  value                = 1
//	  schedule_type_limits = "Fraction"
//	}
//
// Attributes hold typed values, relationship slots hold the names of their
// targets (a list for collection slots) and the reserved "groups" attribute
// holds the extensible groups as a list of tuples.
package modelfile
