package errx

import (
	"fmt"
	"strings"
)

// Field tags a validation error with the record field it concerns.
// The underlying sentinel stays reachable through errors.Is.
func Field(name string, err error) error {
	return wrap(name, err)
}

// Op tags an error with the operation that failed.
func Op(op string, err error) error {
	return wrap(op, err)
}

func wrap(label string, err error) error {
	label = strings.TrimSpace(label)
	switch {
	case err == nil && label == "":
		return nil
	case err == nil:
		return fmt.Errorf("%s: unknown error", label)
	case label == "":
		return err
	default:
		return fmt.Errorf("%s: %w", label, err)
	}
}
