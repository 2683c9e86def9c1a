package tablist

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a rejected tab operation
type ErrorType int

const (
	// ErrTypeInvalidArgument indicates an empty group name or tab id
	ErrTypeInvalidArgument ErrorType = iota
	// ErrTypeUnknownGroup indicates the group was never registered
	ErrTypeUnknownGroup
	// ErrTypeUnknownTab indicates the group has no tab with the given id
	ErrTypeUnknownTab
	// ErrTypeControlMismatch indicates the click came from a control not bound to the target tab
	ErrTypeControlMismatch
	// ErrTypeDuplicate indicates a group or tab id was registered twice
	ErrTypeDuplicate
)

// Sentinel errors for errors.Is matching against a *TabError.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownGroup    = errors.New("unknown tab group")
	ErrUnknownTab      = errors.New("unknown tab")
	ErrControlMismatch = errors.New("control does not belong to tab")
	ErrDuplicate       = errors.New("duplicate identifier")
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidArgument:
		return "Invalid Argument"
	case ErrTypeUnknownGroup:
		return "Unknown Group"
	case ErrTypeUnknownTab:
		return "Unknown Tab"
	case ErrTypeControlMismatch:
		return "Control Mismatch"
	case ErrTypeDuplicate:
		return "Duplicate"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

func (et ErrorType) sentinel() error {
	switch et {
	case ErrTypeInvalidArgument:
		return ErrInvalidArgument
	case ErrTypeUnknownGroup:
		return ErrUnknownGroup
	case ErrTypeUnknownTab:
		return ErrUnknownTab
	case ErrTypeControlMismatch:
		return ErrControlMismatch
	case ErrTypeDuplicate:
		return ErrDuplicate
	default:
		return nil
	}
}

// TabError is returned when a tab operation is rejected.
// The switcher state is never modified when a TabError is returned.
type TabError struct {
	Type    ErrorType // Category of error
	Group   string    // Group name as passed by the caller
	Tab     string    // Tab id as passed by the caller (may be empty)
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *TabError) Error() string {
	target := e.Group
	if e.Tab != "" {
		target += "/" + e.Tab
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s [%s] (caused by: %v)", e.Type, e.Message, target, e.Err)
	}
	return fmt.Sprintf("%s: %s [%s]", e.Type, e.Message, target)
}

// Unwrap returns the underlying error for error chain inspection
func (e *TabError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's type
func (e *TabError) Is(target error) bool {
	s := e.Type.sentinel()
	return s != nil && s == target
}

// IsUnknownTab returns true if err is a *TabError for a missing group or tab.
func IsUnknownTab(err error) bool {
	var tabErr *TabError
	if errors.As(err, &tabErr) {
		return tabErr.Type == ErrTypeUnknownTab || tabErr.Type == ErrTypeUnknownGroup
	}
	return false
}

func newTabError(t ErrorType, group, tab, msg string) *TabError {
	return &TabError{Type: t, Group: group, Tab: tab, Message: msg}
}
