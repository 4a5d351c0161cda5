package errs

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"plain", io.EOF, nil},
		{"decode", fmt.Errorf("%w: probe a.mp3: %w", ErrDecode, io.EOF), ErrDecode},
		{"nested service", fmt.Errorf("summarize: %w", fmt.Errorf("%w: 500", ErrService)), ErrService},
		{"format", fmt.Errorf("%w: bad key", ErrFormat), ErrFormat},
		{"declined", ErrOverwriteDeclined, ErrOverwriteDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); !errors.Is(got, tt.want) || (got == nil) != (tt.want == nil) {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}
