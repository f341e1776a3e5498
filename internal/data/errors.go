package data

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateUser is returned when a registration collides with an
	// existing username.
	ErrDuplicateUser = errors.New("username already registered")

	// ErrUnavailable is returned when the storage connection could not be
	// acquired in time. Callers may retry.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrTransactionAborted is returned when a cascade delete failed partway
	// and was rolled back. Nothing was removed; callers may retry.
	ErrTransactionAborted = errors.New("transaction aborted")
)

// ValidationError reports a missing or malformed required field. It is the
// caller's fault, not a storage failure.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field: %s", e.Field)
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field}
	}
	return nil
}

// classify maps driver-level failures onto the store's error vocabulary.
// Anything it does not recognize passes through unmodified.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateUser
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
