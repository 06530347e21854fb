// Package diagnostic provides the ordered list of warnings, errors and
// informational notes accumulated during a translation run.
//
// Key capabilities:
//   - Untranslated object and record reports
//   - Failed handler reports citing the offending source description
//   - Unresolved reference warnings with the referencing field
//   - "Did you mean" suggestions for misspelled type and field names
package diagnostic
