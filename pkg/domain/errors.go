package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Code discriminates structured application errors
type Code string

// error codes callers can branch on
const (
	CodePermissionDenied Code = "permission_denied"
	CodeInvalidInput     Code = "invalid_input"
	CodeEntityNotFound   Code = "entity_not_found"
)

// Error is the uniform application error. Exactly one of Permission, InvalidKeys or NotFound
// is populated, matching Code.
type Error struct {
	Code        Code
	Message     string
	Permission  *PermissionDenial
	InvalidKeys []InvalidKey
	NotFound    *NotFound
}

// PermissionDenial describes which permission a subject lacks, Object is empty for global permissions
type PermissionDenial struct {
	Permission string `json:"permission"`
	Subject    string `json:"subject"`
	Object     string `json:"object,omitempty"`
}

// InvalidKey is one invalid input entry: the underlying error and the key path it applies to
type InvalidKey struct {
	Err     error
	KeyPath []string
}

// NotFound names a missing entity
type NotFound struct {
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
}

// Error implements error
func (e *Error) Error() string {
	switch e.Code {
	case CodePermissionDenied:
		if e.Permission != nil {
			return fmt.Sprintf("%s: %s lacks %s on %q", e.Message, e.Permission.Subject, e.Permission.Permission, e.Permission.Object)
		}
	case CodeInvalidInput:
		if len(e.InvalidKeys) > 0 {
			parts := make([]string, 0, len(e.InvalidKeys))
			for _, k := range e.InvalidKeys {
				parts = append(parts, fmt.Sprintf("%s: %v", strings.Join(k.KeyPath, "."), k.Err))
			}
			return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
		}
	case CodeEntityNotFound:
		if e.NotFound != nil {
			return fmt.Sprintf("%s: %s %s", e.Message, e.NotFound.EntityType, e.NotFound.EntityID)
		}
	}
	return e.Message
}

// KeyPaths returns the key paths of an invalid input error, joined with dots
func (e *Error) KeyPaths() []string {
	res := make([]string, 0, len(e.InvalidKeys))
	for _, k := range e.InvalidKeys {
		res = append(res, strings.Join(k.KeyPath, "."))
	}
	return res
}

// PermissionDenied makes a permission denial error
func PermissionDenied(permission, subject, object string) *Error {
	return &Error{
		Code:       CodePermissionDenied,
		Message:    "permission denied",
		Permission: &PermissionDenial{Permission: permission, Subject: subject, Object: object},
	}
}

// EntityNotFound makes a not found error for the given entity type and id
func EntityNotFound(entityID, entityType string) *Error {
	return &Error{
		Code:     CodeEntityNotFound,
		Message:  "entity not found",
		NotFound: &NotFound{EntityType: entityType, EntityID: entityID},
	}
}

// InvalidInput makes an invalid input error from key entries
func InvalidInput(message string, keys ...InvalidKey) *Error {
	if message == "" {
		message = "invalid input"
	}
	return &Error{Code: CodeInvalidInput, Message: message, InvalidKeys: keys}
}

// Key is a shortcut to build an InvalidKey
func Key(err error, keyPath ...string) InvalidKey {
	return InvalidKey{Err: err, KeyPath: keyPath}
}

// AsError extracts the application error from err, if any
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ErrorCode returns the code of an application error, or empty string for anything else
func ErrorCode(err error) Code {
	if appErr, ok := AsError(err); ok {
		return appErr.Code
	}
	return ""
}
