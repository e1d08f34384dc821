package services

import (
	"errors"
	"strings"
	"time"

	"github.com/cyclia-app/cyclia/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmailExcluding(email string, excludeUserID uint) (bool, error)
	Create(user *models.User) error
	UpdateProfile(userID uint, displayName string, email string) error
	UpdatePassword(userID uint, passwordHash string) error
	UpdatePasswordAndRecoveryCode(userID uint, passwordHash string, recoveryHash string) error
	ListWithRecoveryCodeHash() ([]models.User, error)
	DeleteAccountAndRelatedData(userID uint) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates the account and returns it together with the one-time
// recovery code.
func (service *AuthService) Register(displayName string, emailRaw string, passwordRaw string) (models.User, string, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, "", err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, "", err
	}

	taken, err := service.users.ExistsByNormalizedEmailExcluding(email, 0)
	if err != nil {
		return models.User{}, "", err
	}
	if taken {
		return models.User{}, "", ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}
	recoveryCode, recoveryHash, err := GenerateRecoveryCodeHash()
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		DisplayName:      strings.TrimSpace(displayName),
		Email:            email,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: recoveryHash,
		CreatedAt:        time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		// A registration racing past the existence check lands on the unique
		// email index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, "", ErrEmailTaken
		}
		return models.User{}, "", err
	}
	return user, recoveryCode, nil
}

// Authenticate never reveals whether the email or the password was wrong.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) UpdateProfile(userID uint, displayName string, emailRaw string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	taken, err := service.users.ExistsByNormalizedEmailExcluding(email, userID)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	if err := service.users.UpdateProfile(userID, strings.TrimSpace(displayName), email); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return service.FindByID(userID)
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, string(passwordHash))
}

// ResetPassword sets a new password and rotates the recovery code, returning
// the fresh code.
func (service *AuthService) ResetPassword(userID uint, newPassword string) (string, error) {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	recoveryCode, recoveryHash, err := GenerateRecoveryCodeHash()
	if err != nil {
		return "", err
	}

	if err := service.users.UpdatePasswordAndRecoveryCode(userID, string(passwordHash), recoveryHash); err != nil {
		return "", err
	}
	return recoveryCode, nil
}

func (service *AuthService) FindUserByRecoveryCode(code string) (*models.User, error) {
	users, err := service.users.ListWithRecoveryCodeHash()
	if err != nil {
		return nil, err
	}

	for index := range users {
		hash := strings.TrimSpace(users[index].RecoveryCodeHash)
		if hash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			return &users[index], nil
		}
	}
	return nil, ErrRecoveryCodeNotFound
}

// DeleteAccount verifies the password, then cascades cycles and their symptom
// rows away with the user.
func (service *AuthService) DeleteAccount(userID uint, password string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return service.users.DeleteAccountAndRelatedData(userID)
}
