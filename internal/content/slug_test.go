package content_test

import (
	"testing"
	"travel/internal/content"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Bali":                        "bali",
		"  Komodo  Island Explorer ":  "komodo-island-explorer",
		"Café Tōkyō":                  "cafe-tokyo",
		"São Paulo & Rio!":            "sao-paulo-rio",
		"10 Days in Flores, 2025":     "10-days-in-flores-2025",
		"---":                         "",
		"Überraschung -- Zürich":      "uberraschung-zurich",
	}
	for in, want := range tests {
		require.Equal(t, want, content.Slugify(in), in)
	}
}

func TestSlugify_Length(t *testing.T) {
	long := ""
	for range 50 {
		long += "word "
	}
	slug := content.Slugify(long)
	require.LessOrEqual(t, len(slug), 120)
	require.NotEqual(t, '-', rune(slug[len(slug)-1]))
}
