package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name    string
		err     *NotFoundError
		wantMsg string
	}{
		{
			name:    "with ID",
			err:     &NotFoundError{Resource: "strong's number", ID: "9999"},
			wantMsg: "strong's number not found: 9999",
		},
		{
			name:    "without ID",
			err:     &NotFoundError{Resource: "transliteration"},
			wantMsg: "transliteration not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrNotFound) {
				t.Errorf("errors.Is(%v, ErrNotFound) = false", tt.err)
			}
		})
	}
}

func TestDataLoadError(t *testing.T) {
	underlying := fs.ErrNotExist
	err := NewDataLoad("open", "ref.json", underlying)

	want := "failed to open dataset ref.json: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrDataLoad) {
		t.Error("expected errors.Is(err, ErrDataLoad)")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is(err, fs.ErrNotExist)")
	}

	wrapped := fmt.Errorf("strong's lookup: %w", err)
	var dle *DataLoadError
	if !errors.As(wrapped, &dle) {
		t.Fatal("errors.As should find DataLoadError through wrapping")
	}
	if dle.Path != "ref.json" {
		t.Errorf("Path = %q, want %q", dle.Path, "ref.json")
	}

	noPath := &DataLoadError{Op: "decode", Err: fmt.Errorf("unexpected EOF")}
	if got := noPath.Error(); got != "failed to decode dataset: unexpected EOF" {
		t.Errorf("Error() = %q", got)
	}
}

func TestInputParseError(t *testing.T) {
	err := NewInputParse("abc", "not a Strong's number", nil)
	if got := err.Error(); got != `invalid input "abc": not a Strong's number` {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is(err, ErrInvalidInput)")
	}

	cause := fmt.Errorf("unexpected token")
	withCause := NewInputParse("G", "not a Strong's number", cause)
	if !errors.Is(withCause, ErrInvalidInput) {
		t.Error("expected ErrInvalidInput match with an underlying error set")
	}
	if !errors.Is(withCause, cause) {
		t.Error("expected underlying error to be reachable")
	}
}

func TestInvalidModeError(t *testing.T) {
	err := NewInvalidMode("x")
	if got := err.Error(); got != `invalid mode "x": choose 's' or 't'` {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrInvalidMode) {
		t.Error("expected errors.Is(err, ErrInvalidMode)")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     NewValidation("log-level", "loud", "must be one of debug, info, warn, error"),
			wantMsg: "validation failed for log-level: must be one of debug, info, warn, error",
		},
		{
			name:    "without field",
			err:     &ValidationError{Message: "empty config"},
			wantMsg: "validation failed: empty config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Error("expected errors.Is(err, ErrInvalidInput)")
			}
		})
	}
}

func TestIsSoft(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", NewNotFound("strong's number", "1"), true},
		{"invalid mode", NewInvalidMode("q"), true},
		{"wrapped not found", fmt.Errorf("lookup: %w", NewNotFound("transliteration", "x")), true},
		{"data load", NewDataLoad("open", "ref.json", fs.ErrNotExist), false},
		{"input parse", NewInputParse("abc", "bad", nil), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSoft(tt.err); got != tt.want {
				t.Errorf("IsSoft(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	base := NewNotFound("strong's number", "26")
	wrapped := Wrapf(base, "render %s", "references")
	if got := wrapped.Error(); got != "render references: strong's number not found: 26" {
		t.Errorf("Wrapf() = %q", got)
	}
	if !Is(wrapped, ErrNotFound) {
		t.Error("Is() should see through Wrapf")
	}
	var nf *NotFoundError
	if !As(Wrap(base, "lookup"), &nf) || nf.ID != "26" {
		t.Error("As() should extract NotFoundError")
	}
}
