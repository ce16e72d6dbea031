package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain text untouched", "Abbey Road", "Abbey Road"},
		{"underscore quoted", "a_c", `a\_c`},
		{"percent quoted", "50% off", `50\% off`},
		{"backslash quoted first", `back\slash`, `back\\slash`},
		{"mixed metacharacters", `\_%`, `\\\_\%`},
		{"empty query", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.query))
		})
	}
}
