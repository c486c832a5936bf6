package tydi

import "fmt"

// ErrorCode classifies construction and lowering failures.
type ErrorCode uint8

const (
	// CodeInvalidIdentifier indicates a name that violates the identifier
	// rule: nonempty, letters/digits/underscores only, no leading digit,
	// no leading/trailing underscore, no consecutive underscores.
	CodeInvalidIdentifier ErrorCode = iota
	// CodeDuplicateName indicates a case-insensitive name collision within
	// one group or union.
	CodeDuplicateName
	// CodeZeroWidthField indicates a bit width that must be positive but
	// is zero or negative.
	CodeZeroWidthField
	// CodeIllegalNesting indicates a stream node inside a stream's user
	// signal type.
	CodeIllegalNesting
	// CodeNestingTooDeep indicates a type tree nested beyond the recursion
	// limit.
	CodeNestingTooDeep
	// CodeInvalidArgument indicates any other invalid constructor argument.
	CodeInvalidArgument
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidIdentifier:
		return "invalid_identifier"
	case CodeDuplicateName:
		return "duplicate_name"
	case CodeZeroWidthField:
		return "zero_width_field"
	case CodeIllegalNesting:
		return "illegal_nesting"
	case CodeNestingTooDeep:
		return "nesting_too_deep"
	case CodeInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

// Error is a structural failure detected during type construction or
// lowering. Path points at the offending node, when known.
type Error struct {
	Code    ErrorCode
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("tydi: %s: %s", e.Path, e.Message)
	}
	return "tydi: " + e.Message
}

// CodeOf returns the error code of err, if err is a tydi error.
func CodeOf(err error) (ErrorCode, bool) {
	if e, ok := err.(*Error); ok {
		return e.Code, true
	}
	return 0, false
}

func newError(code ErrorCode, path, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}
