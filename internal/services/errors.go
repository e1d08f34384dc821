package services

import "errors"

var (
	ErrCycleNotFound       = errors.New("cycle not found")
	ErrSymptomNotFound     = errors.New("symptom not found")
	ErrAssociationNotFound = errors.New("cycle symptom not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrNotOwner = errors.New("caller does not own the resource")

	ErrInvalidDateRange      = errors.New("end date is before start date")
	ErrInvalidIntensity      = errors.New("intensity must be between 1 and 5")
	ErrSymptomDateOutOfRange = errors.New("symptom date outside cycle range")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailTaken            = errors.New("email already registered")
	ErrRecoveryCodeNotFound  = errors.New("recovery code not found")
)

// IsValidation reports whether err belongs to the 400 family.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidIntensity) ||
		errors.Is(err, ErrSymptomDateOutOfRange) ||
		errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrAuthCredentialsInvalid) ||
		errors.Is(err, ErrAuthRecoveryCodeInvalid)
}

// IsNotFound reports whether err belongs to the 404 family.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCycleNotFound) ||
		errors.Is(err, ErrSymptomNotFound) ||
		errors.Is(err, ErrAssociationNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
