package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrEmailNormalization is returned when an address has no usable local
	// part or domain after normalization.
	ErrEmailNormalization = errors.New("an unexpected error occurred when normalizing email")
)

// User-facing validation messages.
const (
	MsgInvalidEmail      = "Please enter a valid email address"
	MsgEmailTooLong      = "Email must contain at most 254 characters"
	MsgPasswordTooShort  = "Password must be at least 8 characters long"
	MsgPasswordTooLong   = "Password must be less than 64 characters long"
	MsgInvalidDate       = "Invalid date format provided for 'day'"
	MsgDateInFuture      = "Date is in the future"
	MsgMissingToken      = "Invalid activation token"
	MsgIncompleteProfile = "Email address is missing from the provider profile"
)

// fieldOrder fixes the order in which messages are listed to the user.
var fieldOrder = map[string]int{
	FieldEmail:    0,
	FieldPassword: 1,
	FieldDate:     2,
	FieldToken:    3,
}

// ValidationError carries per-field messages for input that failed
// validation.
type ValidationError struct {
	Fields map[string][]string
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns all messages, email first, then password, then the rest
// in alphabetical field order.
func (e *ValidationError) Messages() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		oi, iKnown := fieldOrder[fields[i]]
		oj, jKnown := fieldOrder[fields[j]]
		switch {
		case iKnown && jKnown:
			return oi < oj
		case iKnown != jKnown:
			return iKnown
		default:
			return fields[i] < fields[j]
		}
	})

	var out []string
	for _, field := range fields {
		out = append(out, e.Fields[field]...)
	}
	return out
}

// Field returns the first message for field or an empty string.
func (e *ValidationError) Field(field string) string {
	if msgs := e.Fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
