package errors

import (
	stderrors "errors"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("W301")
	if err.Code != "W301" {
		t.Errorf("expected code W301, got %s", err.Code)
	}
	if err.Category != CategoryScheduler {
		t.Errorf("expected scheduler category, got %s", err.Category)
	}
	if err.Message == "" {
		t.Error("expected registered message")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("W999")
	if err.Code != "W999" {
		t.Errorf("expected code W999, got %s", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("expected unknown-error message, got %q", err.Message)
	}
}

func TestErrorString(t *testing.T) {
	err := New("W101")
	want := "W101: Effect panicked"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	uncoded := Newf(CategoryRender, "bad node %d", 3)
	if uncoded.Error() != "bad node 3" {
		t.Errorf("unexpected message: %q", uncoded.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := FromError(cause, "W103")

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}

	var coded *Error
	if !stderrors.As(err, &coded) {
		t.Fatal("expected errors.As to find *Error")
	}
	if coded.Code != "W103" {
		t.Errorf("expected code W103, got %s", coded.Code)
	}
}

func TestFromPanic(t *testing.T) {
	err := FromPanic("exploded", "W301")
	if err.Wrapped == nil {
		t.Fatal("expected wrapped error from panic value")
	}
	if err.Wrapped.Error() != "exploded" {
		t.Errorf("unexpected wrapped message: %q", err.Wrapped.Error())
	}

	cause := stderrors.New("typed")
	err = FromPanic(cause, "W301")
	if !stderrors.Is(err, cause) {
		t.Error("expected error panic values to be wrapped directly")
	}
}

func TestBuilders(t *testing.T) {
	err := New("W201").WithSuggestion("check the component").WithDetail("more detail")
	if err.Suggestion != "check the component" {
		t.Errorf("unexpected suggestion: %q", err.Suggestion)
	}
	if err.Detail != "more detail" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
}
