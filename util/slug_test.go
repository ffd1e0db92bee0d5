package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	t.Run("has the fixed length and charset", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			slug := GenerateSlug()
			assert.Len(t, slug, SlugLength)
			for _, ch := range slug {
				assert.True(t, strings.ContainsRune(slugCharset, ch), "unexpected character %q in %q", ch, slug)
			}
		}
	})

	t.Run("does not repeat in a small sample", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			slug := GenerateSlug()
			assert.False(t, seen[slug], "duplicate slug %q", slug)
			seen[slug] = true
		}
	})
}

func TestIsValidCustomSlug(t *testing.T) {
	valid := []string{"my-card", "Card_123", "a", strings.Repeat("x", 64)}
	for _, slug := range valid {
		assert.True(t, IsValidCustomSlug(slug), "expected %q to be valid", slug)
	}

	invalid := []string{"", "has space", "slash/slug", "dot.slug", strings.Repeat("x", 65), "émoji"}
	for _, slug := range invalid {
		assert.False(t, IsValidCustomSlug(slug), "expected %q to be invalid", slug)
	}
}

func TestIsReservedPath(t *testing.T) {
	for _, p := range ReservedPaths {
		assert.True(t, IsReservedPath(p))
		assert.False(t, IsValidCustomSlug(p), "reserved path %q must not be a valid slug", p)
	}
	assert.False(t, IsReservedPath("my-card"))
}
