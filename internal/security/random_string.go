package security

import (
	"crypto/rand"
	"errors"
)

var (
	ErrInvalidLength   = errors.New("length must not be negative")
	ErrInvalidAlphabet = errors.New("alphabet must hold between 1 and 256 characters")
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Bytes that would skew the distribution are discarded, so every
// alphabet character is equally likely regardless of the alphabet size.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", ErrInvalidAlphabet
	}
	if length == 0 {
		return "", nil
	}

	// Largest multiple of len(alphabet) that fits in a byte; values at or
	// above it are rejected to keep the modulo unbiased.
	ceiling := 256 - 256%len(alphabet)

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= ceiling {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
