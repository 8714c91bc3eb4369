package errors

import (
	"fmt"
)

// Error is the error type carried across the whole client. The code is
// the HTTP status of the failing call when there is one, DefaultCode
// otherwise.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when no code is given. It is set to 500 so that
// an unqualified failure reads as a server-side problem.
var DefaultCode = 500

type callError struct {
	code  int
	msg   string
	cause *callError
}

func (err *callError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *callError) Code() int {
	return err.code
}

func (err *callError) Message() string {
	return err.msg
}

func (err *callError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

// Enricher mutates an error at construction time. Enrichers passed to
// New are applied in order.
type Enricher func(error) error

func WithCode(code int) Enricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if cErr, ok := err.(*callError); ok {
			cErr.code = code
			return cErr
		}

		return &callError{
			msg:  err.Error(),
			code: code,
		}
	}
}

func WithCause(cause error) Enricher {
	var callCause *callError
	switch cause := cause.(type) {
	case *callError:
		callCause = cause
	default:
		callCause = &callError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if cErr, ok := err.(*callError); ok {
			cErr.cause = callCause
			return cErr
		}

		return &callError{
			msg:   err.Error(),
			code:  callCause.code,
			cause: callCause,
		}
	}
}

func New(msg string, fs ...Enricher) error {
	var err error
	err = &callError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

// Code extracts the code of any error: the carried code for an Error,
// DefaultCode for anything else.
func Code(err error) int {
	if err, ok := err.(Error); ok {
		return err.Code()
	}
	return DefaultCode
}
