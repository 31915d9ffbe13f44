package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSafeCall_PassesSuccess(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	h := SafeCall()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSafeCall_WrapsReturnedError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	boom := errors.New("boom")

	err := SafeCall()(func(c echo.Context) error { return boom })(c)
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error in chain, got %v", err)
	}
	stack, ok := StackOf(err)
	if !ok || len(stack) == 0 {
		t.Fatalf("expected captured stack")
	}
}

func TestSafeCall_RecoversPanicAfterPartialWrite(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := SafeCall()(func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusAccepted)
		panic("nil map write")
	})(c)

	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CallError, got %v", err)
	}
	if !ce.Panic {
		t.Errorf("expected panic flag")
	}
	if !strings.Contains(err.Error(), "nil map write") {
		t.Errorf("expected panic value in message, got %q", err.Error())
	}
	if !strings.Contains(string(ce.Stack), "panic") {
		t.Errorf("expected stack to include the panic frame")
	}
	if !c.Response().Committed {
		t.Errorf("partial write should remain committed")
	}
}

func TestSafeCall_DoesNotDoubleWrap(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	boom := errors.New("boom")

	inner := SafeCall()(func(c echo.Context) error { return boom })
	err := SafeCall()(inner)(c)

	var ce *CallError
	if !errors.As(err, &ce) || ce.Err != boom {
		t.Fatalf("expected single CallError around original, got %v", err)
	}
}

func TestSafeCall_ForwardsExactlyOnce(t *testing.T) {
	e := echo.New()
	calls := 0
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		calls++
		_ = c.NoContent(http.StatusInternalServerError)
	}
	e.Use(SafeCall())
	e.GET("/panic", func(c echo.Context) error { panic("boom") })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	for _, path := range []string{"/panic", "/fail"} {
		calls = 0
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if calls != 1 {
			t.Errorf("%s: expected error handler to run once, ran %d times", path, calls)
		}
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s: expected 500, got %d", path, rec.Code)
		}
	}
}
