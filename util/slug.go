package util

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

// SlugLength is the length of generated short link slugs
const SlugLength = 8

const slugCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var customSlugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// GenerateSlug generates a random 8-character slug for a short link
func GenerateSlug() string {
	slug := make([]byte, SlugLength)
	for i := range slug {
		randomIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(slugCharset))))
		if err != nil {
			// crypto/rand failing is effectively unreachable; keep the slot deterministic
			slug[i] = slugCharset[0]
			continue
		}
		slug[i] = slugCharset[randomIndex.Int64()]
	}
	return string(slug)
}

// IsValidCustomSlug validates a user-supplied slug: URL-safe characters only,
// at most 64 chars, and not shadowing a fixed route.
func IsValidCustomSlug(slug string) bool {
	return customSlugPattern.MatchString(slug) && !IsReservedPath(slug)
}
