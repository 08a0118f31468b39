package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"localtime/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("bad input")),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("bad param"),
			code:    http.StatusBadRequest,
			message: "bad param",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("session not found"),
			code:    http.StatusNotFound,
			message: "session not found",
		},
		{
			name:    "UnsupportedValue",
			err:     failure.UnsupportedValue("input value is not a date/time"),
			code:    http.StatusUnprocessableEntity,
			message: "input value is not a date/time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			if !errors.As(tt.err, &fail) {
				t.Fatalf("expected a *failure.Failure, got %T", tt.err)
			}
			if fail.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, fail.Code)
			}
			if fail.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, fail.Message)
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.NotFound("missing")); code != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, code)
	}

	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected %d for plain error, got %d", http.StatusInternalServerError, code)
	}
}

func TestIsUnsupportedValue(t *testing.T) {
	if !failure.IsUnsupportedValue(failure.UnsupportedValue("nope")) {
		t.Error("expected UnsupportedValue failure to be detected")
	}
	if failure.IsUnsupportedValue(failure.NotFound("missing")) {
		t.Error("expected NotFound failure not to be detected as unsupported value")
	}
	if failure.IsUnsupportedValue(errors.New("plain")) {
		t.Error("expected plain error not to be detected as unsupported value")
	}
}
