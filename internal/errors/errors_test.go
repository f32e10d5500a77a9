package errors_test

import (
	"fmt"
	"io"
	"testing"

	apperrors "github.com/bnema/darkscreen/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodedError_Error(t *testing.T) {
	err := apperrors.New(apperrors.CodeBrightnessSettingNotFound, "no backlight device")
	assert.Equal(t, "brightness.setting_not_found: no backlight device", err.Error())

	wrapped := apperrors.Wrap(apperrors.CodeBrightnessWriteFailed, "write level", io.ErrShortWrite)
	assert.Equal(t, "brightness.write_failed: write level (short write)", wrapped.Error())
	assert.ErrorIs(t, wrapped, io.ErrShortWrite)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", io.EOF, apperrors.CodeUnknown},
		{"coded", apperrors.New(apperrors.CodeBrightnessPermissionDenied, "denied"), apperrors.CodeBrightnessPermissionDenied},
		{
			"wrapped with fmt",
			fmt.Errorf("apply: %w", apperrors.New(apperrors.CodeBrightnessSettingNotFound, "missing")),
			apperrors.CodeBrightnessSettingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.GetCode(tt.err))
		})
	}
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "", apperrors.GetMessage(nil))
	assert.Equal(t, "EOF", apperrors.GetMessage(io.EOF))
	assert.Equal(t, "denied", apperrors.GetMessage(apperrors.New(apperrors.CodeBrightnessPermissionDenied, "denied")))
}

func TestIsBrightnessError(t *testing.T) {
	assert.True(t, apperrors.IsBrightnessError(apperrors.New(apperrors.CodeBrightnessWriteFailed, "x")))
	assert.True(t, apperrors.IsCode(
		fmt.Errorf("ctx: %w", apperrors.New(apperrors.CodeBrightnessPermissionDenied, "x")),
		apperrors.CodeBrightnessPermissionDenied,
	))
	assert.False(t, apperrors.IsBrightnessError(apperrors.New(apperrors.CodeStorageSaveFailed, "x")))
	assert.False(t, apperrors.IsBrightnessError(nil))
}
