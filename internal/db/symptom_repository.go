package db

import (
	"github.com/cyclia-app/cyclia/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) List() ([]models.SymptomType, error) {
	symptoms := make([]models.SymptomType, 0)
	if err := repo.database.Order("id ASC").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) FindByID(symptomID uint) (models.SymptomType, error) {
	var symptom models.SymptomType
	if err := repo.database.First(&symptom, symptomID).Error; err != nil {
		return models.SymptomType{}, err
	}
	return symptom, nil
}
