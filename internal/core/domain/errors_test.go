package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInputFileNotExistent", ErrInputFileNotExistent},
		{"ErrIO", ErrIO},
		{"ErrCompile", ErrCompile},
		{"ErrPdfUnite", ErrPdfUnite},
		{"ErrParse", ErrParse},
		{"ErrInvalidInput", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"input missing", ErrInputFileNotExistent, ExitInputMissing},
		{"wrapped io", fmt.Errorf("%w: remove output", ErrIO), ExitIO},
		{"wrapped compile", fmt.Errorf("%w: %w", ErrCompile, errors.New("exit 1")), ExitCompile},
		{"pdfunite", ErrPdfUnite, ExitPdfUnite},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
