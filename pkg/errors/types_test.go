package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeDatabaseQuery, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := New(tt.code, "x").HTTPStatus(); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestMessageHidesStorageDetail(t *testing.T) {
	cause := stderrors.New("UNIQUE constraint failed: users.email")
	err := Database("insert", cause)

	if got := Message(err); got != "Internal server error occurred." {
		t.Errorf("Message() = %q, leaked storage detail", got)
	}

	if !stderrors.Is(err, cause) {
		t.Error("Database() lost the wrapped cause")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	err := NotFound("podcast", 7)
	wrapped := fmt.Errorf("listing: %w", err)

	if !Is(wrapped, ErrCodeNotFound) {
		t.Error("Is() did not see the code through fmt.Errorf wrapping")
	}
	if Is(wrapped, ErrCodeForbidden) {
		t.Error("Is() matched the wrong code")
	}
	if got := GetCode(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %s, want %s", got, ErrCodeInternal)
	}
}
