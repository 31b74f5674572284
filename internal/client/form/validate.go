package form

import (
	"regexp"
	"strings"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/apperr"
)

var emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// Required fails when value is empty after trimming. The message reads
// "<label> is required".
func Required(field, label, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.NewValidation(field, label+" is required")
	}
	return nil
}

// Email checks presence first, then format.
func Email(field, label, value string) error {
	if err := Required(field, label, value); err != nil {
		return err
	}
	if !emailRe.MatchString(strings.TrimSpace(value)) {
		return apperr.NewValidation(field, "Please enter a valid email address")
	}
	return nil
}

func Match(field, value, other, message string) error {
	if value != other {
		return apperr.NewValidation(field, message)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
