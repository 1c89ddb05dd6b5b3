package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"profilekit/models"
)

// Names used when reporting which view of a record was requested.
const (
	KindNameProfile     = "Profile"
	KindNameHttpProfile = "HttpProfile"
)

// NotFoundError reports that no record with ID exists. Kind names the view
// the caller asked for.
type NotFoundError struct {
	ID   int64
	Kind string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("NotFound - %s with id: %d", e.Kind, e.ID)
}

// NarrowingError reports that the record exists but is not of the requested
// specialization.
type NarrowingError struct {
	ID        int64
	Actual    models.ProfileKind
	Requested models.ProfileKind
}

func (e *NarrowingError) Error() string {
	return fmt.Sprintf("profile with id: %d is a %s profile, not %s", e.ID, e.Actual, e.Requested)
}

// ValidationError carries per-field violations of a rejected input record.
type ValidationError struct {
	Violations Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for field := range e.Violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Violations[f])
	}
	return "invalid profile: " + strings.Join(parts, ", ")
}

// ConflictError reports a create that named an id already in use.
type ConflictError struct {
	ID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("profile id %d is already in use", e.ID)
}

// Error codes shared by the API error bodies and the operation metrics.
const (
	CodeOK                = "ok"
	CodeNotFound          = "not_found"
	CodeNarrowingFailure  = "narrowing_failure"
	CodeValidationFailure = "validation_failure"
	CodeIDConflict        = "id_conflict"
	CodeInternal          = "internal"
)

// ErrorCode classifies err into one of the Code* values.
func ErrorCode(err error) string {
	var (
		notFound   *NotFoundError
		narrowing  *NarrowingError
		validation *ValidationError
		conflict   *ConflictError
	)
	switch {
	case err == nil:
		return CodeOK
	case errors.As(err, &notFound):
		return CodeNotFound
	case errors.As(err, &narrowing):
		return CodeNarrowingFailure
	case errors.As(err, &validation):
		return CodeValidationFailure
	case errors.As(err, &conflict):
		return CodeIDConflict
	}
	return CodeInternal
}
