package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy.
// Every typed error in this package unwraps to exactly one of these,
// so callers can classify errors with errors.Is without inspecting types.
var (
	// ErrObjectNotFound indicates that a requested object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates that a supplied value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates that a value is outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates that a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrVersionIsInvalid indicates an aggregate version mismatch,
	// typically a lost-update conflict detected by a conditional write.
	ErrVersionIsInvalid = errors.New("version is invalid")

	// ErrUnauthorized indicates that the acting party lacks the role
	// required for the requested operation.
	ErrUnauthorized = errors.New("actor is not authorized")

	// ErrStatusPrecondition indicates that an operation was invoked from a
	// status outside its allowed source set.
	ErrStatusPrecondition = errors.New("status precondition failed")

	// ErrFieldsAreMissing indicates that one or more required fields were
	// absent from a request payload.
	ErrFieldsAreMissing = errors.New("required fields are missing")
)

// sanitize strips newlines from a value's string representation so that
// error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError is returned when an object cannot be located by its
// identifier. ParamName names the lookup parameter, ID carries the value
// that was searched for.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a parameter fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value falls outside
// its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %v, max value is %v",
		sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required parameter is absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError is returned when a conditional write detects that
// the stored aggregate version no longer matches the version the caller
// read, i.e. the record was modified concurrently.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// AuthorizationError is returned when an actor invokes an operation that
// its role does not permit.
type AuthorizationError struct {
	Operation string
	Role      string
	Cause     error
}

// NewAuthorizationError creates an AuthorizationError without an underlying cause.
func NewAuthorizationError(operation, role string) *AuthorizationError {
	return &AuthorizationError{Operation: operation, Role: role}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping an underlying cause.
func NewAuthorizationErrorWithCause(operation, role string, cause error) *AuthorizationError {
	return &AuthorizationError{Operation: operation, Role: role, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	msg := fmt.Sprintf("%s: role is: %s, operation is: %s", ErrUnauthorized, e.Role, e.Operation)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *AuthorizationError) Unwrap() error {
	return ErrUnauthorized
}

// StatusPreconditionError is returned when an operation is invoked while the
// aggregate is in a status outside the operation's allowed source set.
// The message always names both the current and the expected statuses.
type StatusPreconditionError struct {
	Operation string
	Current   string
	Expected  []string
	Cause     error
}

// NewStatusPreconditionError creates a StatusPreconditionError without an underlying cause.
func NewStatusPreconditionError(operation, current string, expected ...string) *StatusPreconditionError {
	return &StatusPreconditionError{Operation: operation, Current: current, Expected: expected}
}

// NewStatusPreconditionErrorWithCause creates a StatusPreconditionError wrapping an underlying cause.
func NewStatusPreconditionErrorWithCause(
	operation, current string, cause error, expected ...string,
) *StatusPreconditionError {
	return &StatusPreconditionError{Operation: operation, Current: current, Expected: expected, Cause: cause}
}

func (e *StatusPreconditionError) Error() string {
	msg := fmt.Sprintf("%s: operation is: %s, current status is: %s, expected one of: %s",
		ErrStatusPrecondition, e.Operation, e.Current, strings.Join(e.Expected, ", "))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *StatusPreconditionError) Unwrap() error {
	return ErrStatusPrecondition
}

// FieldsAreMissingError is returned when a request payload omits required
// fields. Fields carries the itemized list of missing field names.
type FieldsAreMissingError struct {
	Fields []string
	Cause  error
}

// NewFieldsAreMissingError creates a FieldsAreMissingError without an underlying cause.
func NewFieldsAreMissingError(fields ...string) *FieldsAreMissingError {
	return &FieldsAreMissingError{Fields: fields}
}

// NewFieldsAreMissingErrorWithCause creates a FieldsAreMissingError wrapping an underlying cause.
func NewFieldsAreMissingErrorWithCause(cause error, fields ...string) *FieldsAreMissingError {
	return &FieldsAreMissingError{Fields: fields, Cause: cause}
}

func (e *FieldsAreMissingError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrFieldsAreMissing, strings.Join(e.Fields, ", "))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *FieldsAreMissingError) Unwrap() error {
	return ErrFieldsAreMissing
}
