package security

import (
	"errors"
	"strings"
	"testing"
)

func TestRandomStringRejectsBadArguments(t *testing.T) {
	t.Parallel()

	if _, err := RandomString(-1, "abc"); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("negative length: got %v, want ErrInvalidLength", err)
	}
	if _, err := RandomString(4, ""); !errors.Is(err, ErrInvalidAlphabet) {
		t.Fatalf("empty alphabet: got %v, want ErrInvalidAlphabet", err)
	}
	if _, err := RandomString(4, strings.Repeat("a", 257)); !errors.Is(err, ErrInvalidAlphabet) {
		t.Fatalf("oversized alphabet: got %v, want ErrInvalidAlphabet", err)
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	t.Parallel()

	got, err := RandomString(0, "abc")
	if err != nil || got != "" {
		t.Fatalf("RandomString(0, ...) = %q, %v; want empty string", got, err)
	}
}

func TestRandomStringStaysInsideAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	got, err := RandomString(256, alphabet)
	if err != nil {
		t.Fatalf("RandomString: %v", err)
	}
	if len(got) != 256 {
		t.Fatalf("length = %d, want 256", len(got))
	}
	for _, char := range got {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q outside alphabet", char)
		}
	}
}

func TestRandomStringSingleCharacterAlphabet(t *testing.T) {
	t.Parallel()

	got, err := RandomString(12, "X")
	if err != nil {
		t.Fatalf("RandomString: %v", err)
	}
	if got != strings.Repeat("X", 12) {
		t.Fatalf("got %q, want twelve X", got)
	}
}
