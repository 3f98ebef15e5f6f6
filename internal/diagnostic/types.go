package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"classmap-builder/internal/common"
)

// Diagnostic codes.
const (
	CodeUnknownField    = "unknown_field"
	CodeUnsupportedType = "unsupported_type"
	CodeAmbiguousPath   = "ambiguous_path"
	CodeDuplicateAlias  = "duplicate_alias"
	CodeDuplicateColumn = "duplicate_column"
	CodeInvalidModel    = "invalid_model"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// FieldPath identifies which field path this relates to (if any).
	FieldPath string
	// Alias identifies which column alias this relates to (if any).
	Alias string
	// ColumnIndex is the column the spec refers to, or -1 when not applicable.
	ColumnIndex int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Subject identifies the field spec a diagnostic is about.
type Subject struct {
	FieldPath   string
	Alias       string
	ColumnIndex int
}

// NoSubject is used for diagnostics that concern the model as a whole.
var NoSubject = Subject{ColumnIndex: -1}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message string, subj Subject, suggestions []string) {
	diag := Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		FieldPath:   subj.FieldPath,
		Alias:       subj.Alias,
		ColumnIndex: subj.ColumnIndex,
		Suggestions: suggestions,
	}

	switch sev {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, subj Subject, suggestions ...string) {
	d.add(DiagnosticError, code, message, subj, suggestions)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, subj Subject) {
	d.add(DiagnosticWarning, code, message, subj, nil)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, subj Subject) {
	d.add(DiagnosticInfo, code, message, subj, nil)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// WithCode returns every diagnostic, of any severity, carrying code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		out = append(out, common.Filter(group, func(x Diagnostic) bool { return x.Code == code })...)
	}

	return out
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.ColumnIndex >= 0 {
		prefix = append(prefix, fmt.Sprintf("#%d", d.ColumnIndex))
	}

	if d.Alias != "" {
		prefix = append(prefix, "["+d.Alias+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
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
