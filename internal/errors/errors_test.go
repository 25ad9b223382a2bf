package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestRIQErrorFormat(t *testing.T) {
	err := New(ErrCodeAuthLoginFailed, "login failed")

	if !strings.Contains(err.Error(), "[AUTH-002]") {
		t.Errorf("error string missing code: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "login failed") {
		t.Errorf("error string missing message: %s", err.Error())
	}
}

func TestRIQErrorWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeAPIUnreachable, "backend unreachable", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error string missing cause: %s", err.Error())
	}
}

func TestRIQErrorSuggestions(t *testing.T) {
	err := New(ErrCodeUploadNotCSV, "only CSV files are supported").
		WithSuggestion("use a .csv file")

	if !strings.Contains(err.Error(), "Suggestions:") {
		t.Errorf("error string missing suggestions block: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "use a .csv file") {
		t.Errorf("error string missing suggestion text: %s", err.Error())
	}
}

func TestCommonConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *RIQError
		code ErrorCode
	}{
		{"not logged in", NewNotLoggedInError(), ErrCodeAuthNotLoggedIn},
		{"role denied", NewRoleDeniedError("ADMIN"), ErrCodeAuthRoleDenied},
		{"upload not csv", NewUploadNotCSVError("data.txt"), ErrCodeUploadNotCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if len(tt.err.Suggestions) == 0 {
				t.Error("expected at least one suggestion")
			}
		})
	}
}
