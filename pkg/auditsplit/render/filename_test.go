package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Alice", "Alice"},
		{"O'Brien, Pat", "O'Brien, Pat"},
		{"A/B", "A_B"},
		{`a<>:"/\|?*b`, "a_b"},
		{"line\nbreak", "line_break"},
		{"  padded  ", "padded"},
		{"", "_"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SanitizeFilename(tt.input), "SanitizeFilename(%q)", tt.input)
	}
}

func TestOutputName(t *testing.T) {
	src := &models.Source{BookName: "QA Review.xlsx", Path: "QA Review.xlsx"}

	t.Run("default template", func(t *testing.T) {
		r, err := NewRenderer(src, Options{})
		require.NoError(t, err)

		name, err := r.OutputName("Alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice.xlsx", name)
	})

	t.Run("source prefixed template", func(t *testing.T) {
		r, err := NewRenderer(src, Options{NameTemplate: "{{.Source}} - {{.Leader}}.xlsx"})
		require.NoError(t, err)

		name, err := r.OutputName("Bob")
		require.NoError(t, err)
		assert.Equal(t, "QA Review - Bob.xlsx", name)
	})

	t.Run("clashes get a suffix", func(t *testing.T) {
		r, err := NewRenderer(src, Options{})
		require.NoError(t, err)

		names := make([]string, 0, 3)
		for _, leader := range []string{"A/B", "A_B", "a_b"} {
			name, err := r.OutputName(leader)
			require.NoError(t, err)
			names = append(names, name)
		}
		assert.Equal(t, []string{"A_B.xlsx", "A_B (2).xlsx", "a_b (3).xlsx"}, names)
	})

	t.Run("invalid templates", func(t *testing.T) {
		_, err := NewRenderer(src, Options{NameTemplate: "{{.Leader"})
		assert.Error(t, err)

		r, err := NewRenderer(src, Options{NameTemplate: "{{.Missing}}.xlsx"})
		require.NoError(t, err)
		_, err = r.OutputName("Alice")
		assert.Error(t, err)

		r, err = NewRenderer(src, Options{NameTemplate: "sub/{{.Leader}}.xlsx"})
		require.NoError(t, err)
		_, err = r.OutputName("Alice")
		assert.Error(t, err)
	})
}
