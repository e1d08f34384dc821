package db

import (
	"github.com/cyclia-app/cyclia/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) FindByID(cycleID uint) (models.PeriodCycle, error) {
	var cycle models.PeriodCycle
	if err := repo.database.Preload("Symptoms").First(&cycle, cycleID).Error; err != nil {
		return models.PeriodCycle{}, err
	}
	return cycle, nil
}

// ListByUser returns the user's cycles most recent first.
func (repo *CycleRepository) ListByUser(userID uint) ([]models.PeriodCycle, error) {
	cycles := make([]models.PeriodCycle, 0)
	if err := repo.database.
		Preload("Symptoms").
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) ListByUserStartAscending(userID uint) ([]models.PeriodCycle, error) {
	cycles := make([]models.PeriodCycle, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date ASC, id ASC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

// CreateWithSymptoms persists the cycle and all of its symptom rows atomically.
func (repo *CycleRepository) CreateWithSymptoms(cycle *models.PeriodCycle, symptoms []models.CycleSymptom) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Symptoms").Create(cycle).Error; err != nil {
			return err
		}
		for index := range symptoms {
			symptoms[index].CycleID = cycle.ID
		}
		if len(symptoms) > 0 {
			if err := tx.Create(&symptoms).Error; err != nil {
				return err
			}
		}
		cycle.Symptoms = symptoms
		return nil
	})
}

// UpdateWithSymptoms saves the cycle fields and replaces every existing symptom
// association with the provided set, all inside one transaction.
func (repo *CycleRepository) UpdateWithSymptoms(cycle *models.PeriodCycle, symptoms []models.CycleSymptom) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PeriodCycle{}).Where("id = ?", cycle.ID).Updates(map[string]any{
			"start_date": cycle.StartDate,
			"end_date":   cycle.EndDate,
			"notes":      cycle.Notes,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("cycle_id = ?", cycle.ID).Delete(&models.CycleSymptom{}).Error; err != nil {
			return err
		}
		for index := range symptoms {
			symptoms[index].ID = 0
			symptoms[index].CycleID = cycle.ID
		}
		if len(symptoms) > 0 {
			if err := tx.Create(&symptoms).Error; err != nil {
				return err
			}
		}
		cycle.Symptoms = symptoms
		return nil
	})
}

// DeleteWithSymptoms removes the cycle's symptom rows first, then the cycle itself.
func (repo *CycleRepository) DeleteWithSymptoms(cycleID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cycle_id = ?", cycleID).Delete(&models.CycleSymptom{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PeriodCycle{}, cycleID).Error
	})
}

func (repo *CycleRepository) CreateSymptom(symptom *models.CycleSymptom) error {
	return repo.database.Create(symptom).Error
}

func (repo *CycleRepository) FindSymptomByID(assocID uint) (models.CycleSymptom, error) {
	var symptom models.CycleSymptom
	if err := repo.database.First(&symptom, assocID).Error; err != nil {
		return models.CycleSymptom{}, err
	}
	return symptom, nil
}

func (repo *CycleRepository) DeleteSymptom(assocID uint) error {
	return repo.database.Delete(&models.CycleSymptom{}, assocID).Error
}
