package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// CallError is a handler failure captured by SafeCall together with the
// stack at the point it was captured.
type CallError struct {
	Err   error
	Stack []byte
	Panic bool
}

func (e *CallError) Error() string { return e.Err.Error() }

func (e *CallError) Unwrap() error { return e.Err }

// StackOf returns the stack recorded for err, if SafeCall captured one.
func StackOf(err error) ([]byte, bool) {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Stack, true
	}
	return nil, false
}

// SafeCall turns both returned errors and panics from the rest of the chain
// into a single returned error. Echo then invokes the HTTP error handler
// exactly once with it.
func SafeCall() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				perr, ok := r.(error)
				if !ok {
					perr = fmt.Errorf("%v", r)
				}
				err = &CallError{Err: fmt.Errorf("panic: %w", perr), Stack: debug.Stack(), Panic: true}
			}()

			if err := next(c); err != nil {
				var ce *CallError
				if errors.As(err, &ce) {
					return err
				}
				return &CallError{Err: err, Stack: debug.Stack()}
			}
			return nil
		}
	}
}
