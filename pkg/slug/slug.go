package slug

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength is the slug length used for new folder ids.
const DefaultLength = 12

// New returns a random lowercase-alphanumeric slug of n characters.
func New(n int) (string, error) {
	if n <= 0 {
		n = DefaultLength
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
