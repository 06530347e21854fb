package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"bem-translator/internal/common"
)

// Diagnostics holds every diagnostic recorded during a run, in the order
// they were produced.
type Diagnostics struct {
	Items []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject describes the source object or record this relates to (if any).
	Subject string
	// Field identifies which attribute, slot or record field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// Add appends a fully populated diagnostic.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.Items = append(d.Items, diag)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject, field string) {
	d.Add(Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject, field string) {
	d.Add(Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject, field string) {
	d.Add(Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Field:    field,
	})
}

// Errors returns the error diagnostics in recording order.
func (d *Diagnostics) Errors() []Diagnostic {
	return d.bySeverity(SeverityError)
}

// Warnings returns the warning diagnostics in recording order.
func (d *Diagnostics) Warnings() []Diagnostic {
	return d.bySeverity(SeverityWarning)
}

// Infos returns the info diagnostics in recording order.
func (d *Diagnostics) Infos() []Diagnostic {
	return d.bySeverity(SeverityInfo)
}

// WithCode returns the diagnostics carrying the given code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	return common.Filter(d.Items, func(diag Diagnostic) bool { return diag.Code == code })
}

func (d *Diagnostics) bySeverity(s Severity) []Diagnostic {
	return common.Filter(d.Items, func(diag Diagnostic) bool { return diag.Severity == s })
}

// Len returns the number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Items)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, diag := range d.Items {
		if diag.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Merge appends another Diagnostics instance to this one, keeping order.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Items = append(d.Items, other.Items...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Err returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Err() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors() {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
