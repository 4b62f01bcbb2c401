package wire

import (
	"errors"
	"fmt"
)

// MalformedError reports that a structurally required wrapper (array shape,
// object shape, minimum element count) was missing from an upstream payload.
// It is fatal to the single parse call that produced it; callers iterating
// over collections catch and skip per item.
type MalformedError struct {
	// Resource names the entity being parsed, e.g. "league" or "scoreboard".
	Resource string
	// Context carries the upstream identifier (league key, team key, week)
	// when the caller knows it.
	Context string
	// Detail describes what was wrong with the shape.
	Detail string
}

func (e *MalformedError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("malformed %s response (%s): %s", e.Resource, e.Context, e.Detail)
	}
	return fmt.Sprintf("malformed %s response: %s", e.Resource, e.Detail)
}

// Malformed builds a MalformedError without upstream context.
func Malformed(resource, detail string) *MalformedError {
	return &MalformedError{Resource: resource, Detail: detail}
}

// MalformedCtx builds a MalformedError carrying an upstream identifier.
func MalformedCtx(resource, context, detail string) *MalformedError {
	return &MalformedError{Resource: resource, Context: context, Detail: detail}
}

// IsMalformed reports whether err is (or wraps) a MalformedError.
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}
