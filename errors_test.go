package cairo

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/cairo/ffi"
)

func TestCheckStatus(t *testing.T) {
	if err := checkStatus(ffi.StatusSuccess); err != nil {
		t.Errorf("checkStatus(SUCCESS) = %v", err)
	}
	for _, status := range []ffi.Status{ffi.StatusNoMemory, ffi.StatusSurfaceFinished, ffi.Status(999)} {
		err := checkStatus(status)
		var se *StatusError
		if !errors.As(err, &se) || se.Status != status {
			t.Errorf("checkStatus(%v) = %v, want status kept verbatim", status, err)
		}
	}
}

func TestStatusErrorIs(t *testing.T) {
	err := error(&StatusError{Status: ffi.StatusReadError, Err: &StreamError{Op: "read", Err: io.ErrUnexpectedEOF}})

	if !errors.Is(err, &StatusError{Status: ffi.StatusReadError}) {
		t.Error("errors.Is does not match the same status")
	}
	if errors.Is(err, &StatusError{Status: ffi.StatusWriteError}) {
		t.Error("errors.Is matches a different status")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is does not reach the stream cause")
	}
	if IsStatus(io.EOF, ffi.StatusReadError) {
		t.Error("IsStatus matches a non-status error")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&StatusError{Status: ffi.StatusSurfaceFinished}, "SURFACE_FINISHED"},
		{&StatusError{Status: ffi.StatusWriteError, Err: &StreamError{Op: "write", Err: io.ErrShortWrite}}, "stream write: short write"},
		{&UnsupportedVersionError{Kind: "PDF version", Value: 42}, "unsupported PDF version 42"},
		{&BufferSizeError{Got: 10, Need: 400}, "got a 10 bytes buffer, needs at least 400"},
		{&FeatureError{Feature: "CreateForRectangle", Need: ">= 1.10.0", Have: "1.8.0"}, "CreateForRectangle needs library >= 1.10.0, have 1.8.0"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); !strings.Contains(got, tt.want) {
			t.Errorf("Error() = %q, want it to contain %q", got, tt.want)
		}
	}
}
