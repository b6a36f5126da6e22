package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// CustomizedError carries a call trace, an i18n message key and the http status
// the error should be rendered with.
type CustomizedError struct {
	trace  []string
	msg    string
	err    error
	code   int
	detail any
}

// New builds an error for the given trace point. msg is an i18n message key.
func New(trace, msg string, err error) *CustomizedError {
	return &CustomizedError{
		trace: []string{trace},
		msg:   msg,
		err:   err,
		code:  http.StatusInternalServerError,
	}
}

// Trace prepends prefix to err's trace. Errors that are not customized are
// wrapped as internal errors.
func Trace(prefix string, err error) *CustomizedError {
	if err == nil {
		return nil
	}
	var ce *CustomizedError
	if errors.As(err, &ce) {
		ce.trace = append([]string{prefix}, ce.trace...)
		return ce
	}
	return New(prefix, "error.internal", err)
}

func (e *CustomizedError) Code(code int) *CustomizedError {
	e.code = code
	return e
}

func (e *CustomizedError) Detail(detail any) *CustomizedError {
	e.detail = detail
	return e
}

func (e *CustomizedError) HttpCode() int {
	return e.code
}

func (e *CustomizedError) Message() string {
	return e.msg
}

func (e *CustomizedError) Details() any {
	return e.detail
}

func (e *CustomizedError) TraceString() string {
	return strings.Join(e.trace, " -> ")
}

func (e *CustomizedError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.TraceString(), e.msg)
	}
	return fmt.Sprintf("%s: %s, %s", e.TraceString(), e.msg, e.err.Error())
}

func (e *CustomizedError) Unwrap() error {
	return e.err
}

// As is a shortcut for errors.As against *CustomizedError.
func As(err error) (*CustomizedError, bool) {
	var ce *CustomizedError
	ok := errors.As(err, &ce)
	return ce, ok
}

// Is reports whether err is a customized error with the given http code.
func Is(err error, code int) bool {
	ce, ok := As(err)
	return ok && ce.code == code
}
