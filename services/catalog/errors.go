package catalog

import (
	"errors"
	"fmt"
)

// Validation failure reasons.
const (
	ReasonUnknownPackage = "unknownPackage"
	ReasonBelowMinimum   = "belowMinimum"
	ReasonRestrictedDay  = "restrictedDay"
	ReasonMalformedDate  = "malformedDate"
)

// ValidationError is a business-rule failure. It is conversational by
// design: Message is safe to relay to the end user verbatim.
type ValidationError struct {
	Reason  string
	Message string
	// MinJumpers is set when Reason is ReasonBelowMinimum.
	MinJumpers int
	// AllowedDays is set when Reason is ReasonRestrictedDay.
	AllowedDays []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// IsValidation reports whether err is a catalog validation error,
// unwrapping as needed.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func newUnknownPackageError(name string, available []string) *ValidationError {
	return &ValidationError{
		Reason:  ReasonUnknownPackage,
		Message: fmt.Sprintf("'%s' is not a valid package. Available packages: %s", name, join(available)),
	}
}

func newBelowMinimumError(name string, min, got int) *ValidationError {
	return &ValidationError{
		Reason:     ReasonBelowMinimum,
		MinJumpers: min,
		Message:    fmt.Sprintf("Minimum %d jumpers required for %s package. You specified %d.", min, name, got),
	}
}

func newRestrictedDayError(name, day string, allowed []string) *ValidationError {
	return &ValidationError{
		Reason:      ReasonRestrictedDay,
		AllowedDays: allowed,
		Message:     fmt.Sprintf("%s is only available on %s. %s is not available.", name, joinAnd(allowed), day),
	}
}

func newMalformedDateError(date string) *ValidationError {
	return &ValidationError{
		Reason:  ReasonMalformedDate,
		Message: fmt.Sprintf("Invalid date '%s'. Please use YYYY-MM-DD format.", date),
	}
}

func join(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		out := ""
		for i, s := range items[:len(items)-1] {
			if i > 0 {
				out += ", "
			}
			out += s
		}
		return out + " and " + items[len(items)-1]
	}
}
