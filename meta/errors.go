package meta

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCode identifies a class of metaobject failure. Every failure is scoped
// to the operation that triggered it; there is no fatal category.
type ErrorCode string

const (
	ErrDuplicateClass     ErrorCode = "duplicate_class"
	ErrUnauthorizedCaller ErrorCode = "unauthorized_caller"
	ErrClassBuilt         ErrorCode = "class_built"
	ErrDuplicateMember    ErrorCode = "duplicate_member"
	ErrInvalidName        ErrorCode = "invalid_name"
	ErrInvalidEnumValue   ErrorCode = "invalid_enum_value"
	ErrNoSuchAttribute    ErrorCode = "no_such_attribute"
	ErrRequiredAttribute  ErrorCode = "required_attribute"
	ErrNotReadable        ErrorCode = "not_readable"
	ErrNotWritable        ErrorCode = "not_writable"
	ErrNotCallable        ErrorCode = "not_callable"
	ErrNotFound           ErrorCode = "not_found"
	ErrNoTypeHandler      ErrorCode = "no_type_handler"
)

// Error is the failure type returned by every operation in this package.
type Error struct {
	Code   ErrorCode
	Class  string   // owning class, when known
	Member string   // offending member, when known
	Names  []string // full offending set for aggregate failures
	msg    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.Code)
}

// Is matches on error code, so callers can test failure classes with
// errors.Is(err, &meta.Error{Code: meta.ErrNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Errorf creates a new Error with the given code and formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ErrorCode from err. It returns the empty code when err
// is nil or not a metaobject error.
func CodeOf(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}

// memberError creates an Error scoped to one member of a class.
func memberError(code ErrorCode, class, member, format string, args ...any) *Error {
	e := Errorf(code, format, args...)
	e.Class = class
	e.Member = member
	return e
}

// noSuchAttributes builds the aggregate failure for unknown attribute names
// supplied at construction. It always reports the full offending set, sorted
// for stable messages.
func noSuchAttributes(class string, names []string) *Error {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return &Error{
		Code:  ErrNoSuchAttribute,
		Class: class,
		Names: sorted,
		msg:   fmt.Sprintf("class %s has no attribute named %s", class, strings.Join(sorted, ", ")),
	}
}
