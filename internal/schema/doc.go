// Package schema provides the read-only Schema Catalog that describes every
// Workspace record type: its ordered field list, field kinds and choices,
// the repeating extensible group and whether the type is a singleton.
//
// # Catalog file
//
// Catalogs are YAML documents:
//
//	version: "1"
//	types:
//	  - name: Schedule:Constant
//	    named: true
//	    fields:
//	      - name: Schedule Type Limits Name
//	        kind: reference
//	        refs: [ScheduleTypeLimits]
//	      - name: Hourly Value
//	        kind: real
//	        required: true
//	  - name: Construction
//	    named: true
//	    extensible:
//	      - name: Layer
//	        kind: reference
//	        refs: [Material]
//	    min_groups: 1
//
// The record name is not part of the field list; a named type stores it
// separately and the text form writes it first.
//
// Type names are matched case-insensitively. Field names are matched after
// normalization, so "Coefficient1 Constant" and "coefficient1_constant"
// address the same field.
package schema
