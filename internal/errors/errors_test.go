package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/s4/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_program",
			code:    errors.ErrNoProgram,
			message: "program not found",
			wantStr: "[NO_PROGRAM] program not found",
		},
		{
			name:    "already_exists",
			code:    errors.ErrAlreadyExists,
			message: "destination exists",
			wantStr: "[ALREADY_EXISTS] destination exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}
	err := errors.Wrapf(base, errors.ErrFileIO, "copy %s", "x")
	require.NotNil(t, err)

	assert.Equal(t, "[FILE_IO] copy x: open x: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, fs.ErrPermission))
	assert.Nil(t, errors.Wrap(nil, errors.ErrFileIO, "nothing"))
}

func TestIsComparesCodes(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrNoInterpreter, "pwsh not found"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrNoInterpreter, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrFileIO, "")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoInterpreter))
	assert.Equal(t, errors.ErrNoInterpreter, errors.GetErrorCode(err))
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrAlreadyExists, "exists").WithDetail("path", `C:\x`)
	assert.Equal(t, `C:\x`, errors.GetErrorDetails(err)["path"])
}
