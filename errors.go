package readflow

import (
	"errors"
	"fmt"
)

// Error codes for readflow. Code is carried on errors produced by
// Errorf and retrieved with ErrorCode; an error without a code (e.g. one
// returned directly by a collaborator) yields the empty string.
const (
	// EINVALID marks a malformed URL or a value that failed validation
	// (spec: InvalidURL).
	EINVALID = "invalid"

	// EBLOCKED marks a URL rejected by the allow/block policy or a MIME
	// "exclude" dispatch action (spec: PolicyBlocked).
	EBLOCKED = "blocked"

	// EFETCH marks a failure surfaced from the Fetcher: DNS, transport,
	// or an HTTP status the caller has configured as fatal (spec:
	// FetchFailed).
	EFETCH = "fetch_failed"

	// ENOCONFIG marks a rule file that parsed to zero usable lines.
	// This is never fatal; callers treat it as "no config for this
	// host" (spec: ConfigLoadError).
	ENOCONFIG = "no_config"

	// EINTERNAL marks an unexpected internal failure.
	EINTERNAL = "internal"
)

// codedError pairs a message with a stable code so callers can branch on
// failure class without string matching.
type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string {
	return e.msg
}

// Errorf returns an error carrying the given code, formatted like
// fmt.Errorf.
func Errorf(code string, format string, args ...any) error {
	return &codedError{code: code, msg: fmt.Sprintf(format, args...)}
}

// ErrorCode unwraps err looking for a code attached by Errorf. Returns
// the empty string for nil or uncoded errors.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ""
}

// ErrorMessage returns the human-readable message of err, stripped of
// any code wrapping. Returns the empty string for a nil error.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.msg
	}
	return err.Error()
}
