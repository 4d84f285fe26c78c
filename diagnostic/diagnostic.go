// Package diagnostic collects non-fatal findings a mapping call wants to
// surface without aborting. Fatal failures are regular errors; warnings
// travel back alongside the result in a Diagnostics value.
package diagnostic

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type SeverityEnum int

const (
	SeverityInfo SeverityEnum = iota
	SeverityWarning
	SeverityError

	// SeverityTotal is a constant that represents the total number of severities defined
	SeverityTotal = int(iota)
)

// String returns a human-readable severity name.
func (s SeverityEnum) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single diagnostic record.
type Diagnostic struct {
	// Severity of the record.
	Severity SeverityEnum
	// Code is a stable identifier for this class of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Index is the element or entry the record refers to, -1 when the
	// finding is not positional.
	Index int
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Index >= 0 {
		msg = fmt.Sprintf("%s (at %d)", msg, d.Index)
	}

	return msg
}

// Diagnostics holds all records collected during one call.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddError adds an error record.
func (d *Diagnostics) AddError(code, message string, index int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Index:    index,
	})
}

// AddWarning adds a warning record.
func (d *Diagnostics) AddWarning(code, message string, index int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Index:    index,
	})
}

// AddInfo adds an info record.
func (d *Diagnostics) AddInfo(code, message string, index int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Index:    index,
	})
}

// HasErrors returns true if there are any error records.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning records.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Err folds all error records into one combined error, or nil when there
// are none. Warnings and infos never contribute.
func (d *Diagnostics) Err() error {
	var merr *multierror.Error
	for _, e := range d.Errors {
		merr = multierror.Append(merr, errors.New(e.String()))
	}

	return merr.ErrorOrNil()
}
