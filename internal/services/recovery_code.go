package services

import (
	"strings"

	"github.com/cyclia-app/cyclia/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// Ambiguous characters (I, O, 0, 1) are excluded from generated codes.
const recoveryCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func GenerateRecoveryCode() (string, error) {
	groups := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		group, err := security.RandomString(4, recoveryCodeAlphabet)
		if err != nil {
			return "", err
		}
		groups = append(groups, group)
	}
	return "CYC-" + strings.Join(groups, "-"), nil
}

// GenerateRecoveryCodeHash returns the plaintext code (shown to the user once)
// together with its bcrypt hash for storage.
func GenerateRecoveryCodeHash() (string, string, error) {
	code, err := GenerateRecoveryCode()
	if err != nil {
		return "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return code, string(hash), nil
}

// NormalizeRecoveryCode accepts user input with arbitrary case, spacing or
// missing dashes and rebuilds the canonical CYC-XXXX-XXXX-XXXX form.
func NormalizeRecoveryCode(raw string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	compact := strings.NewReplacer("-", "", " ", "").Replace(cleaned)
	compact = strings.TrimPrefix(compact, "CYC")
	if len(compact) != 12 {
		return cleaned
	}
	return "CYC-" + compact[0:4] + "-" + compact[4:8] + "-" + compact[8:12]
}
