package db

import (
	"github.com/cyclia-app/cyclia/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ExistsByNormalizedEmailExcluding reports whether another user already holds the
// email; excludeUserID 0 means no exclusion.
func (repo *UserRepository) ExistsByNormalizedEmailExcluding(email string, excludeUserID uint) (bool, error) {
	query := repo.database.Model(&models.User{}).Where("lower(trim(email)) = ?", email)
	if excludeUserID != 0 {
		query = query.Where("id <> ?", excludeUserID)
	}

	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateProfile(userID uint, displayName string, email string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"display_name": displayName,
		"email":        email,
	}).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}

// UpdatePasswordAndRecoveryCode rotates both credentials in one statement so a
// reset can never leave the old recovery code valid alongside a new password.
func (repo *UserRepository) UpdatePasswordAndRecoveryCode(userID uint, passwordHash string, recoveryHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":      passwordHash,
		"recovery_code_hash": recoveryHash,
	}).Error
}

func (repo *UserRepository) ListWithRecoveryCodeHash() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Where("recovery_code_hash <> ''").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteAccountAndRelatedData removes the user's cycles, the cycles' symptom rows
// and finally the user row inside one transaction.
func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("cycle_id IN (?)", tx.Model(&models.PeriodCycle{}).Select("id").Where("user_id = ?", userID)).
			Delete(&models.CycleSymptom{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PeriodCycle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
