package services

import (
	"errors"
	"strings"
	"time"

	"github.com/cyclia-app/cyclia/internal/models"
	"gorm.io/gorm"
)

type CycleStore interface {
	FindByID(cycleID uint) (models.PeriodCycle, error)
	ListByUser(userID uint) ([]models.PeriodCycle, error)
	CreateWithSymptoms(cycle *models.PeriodCycle, symptoms []models.CycleSymptom) error
	UpdateWithSymptoms(cycle *models.PeriodCycle, symptoms []models.CycleSymptom) error
	DeleteWithSymptoms(cycleID uint) error
	CreateSymptom(symptom *models.CycleSymptom) error
	FindSymptomByID(assocID uint) (models.CycleSymptom, error)
	DeleteSymptom(assocID uint) error
}

type SymptomCatalog interface {
	FindByID(symptomID uint) (models.SymptomType, error)
}

type CycleService struct {
	cycles  CycleStore
	catalog SymptomCatalog
}

func NewCycleService(cycles CycleStore, catalog SymptomCatalog) *CycleService {
	return &CycleService{cycles: cycles, catalog: catalog}
}

type SymptomInput struct {
	SymptomID uint
	Intensity int
	Date      time.Time
}

type CycleInput struct {
	StartDate time.Time
	EndDate   time.Time
	Notes     string
	Symptoms  []SymptomInput
}

func (service *CycleService) Create(userID uint, input CycleInput) (models.PeriodCycle, error) {
	cycle := models.PeriodCycle{
		UserID:    userID,
		StartDate: dateOnly(input.StartDate),
		EndDate:   dateOnly(input.EndDate),
		Notes:     strings.TrimSpace(input.Notes),
	}
	if cycle.EndDate.Before(cycle.StartDate) {
		return models.PeriodCycle{}, ErrInvalidDateRange
	}

	symptoms, err := service.buildSymptomRows(cycle, input.Symptoms)
	if err != nil {
		return models.PeriodCycle{}, err
	}

	if err := service.cycles.CreateWithSymptoms(&cycle, symptoms); err != nil {
		return models.PeriodCycle{}, err
	}
	return cycle, nil
}

func (service *CycleService) Get(cycleID uint, userID uint) (models.PeriodCycle, error) {
	return service.findOwnedCycle(cycleID, userID)
}

func (service *CycleService) List(userID uint) ([]models.PeriodCycle, error) {
	return service.cycles.ListByUser(userID)
}

// Update replaces the cycle fields and its full symptom-association set.
func (service *CycleService) Update(cycleID uint, userID uint, input CycleInput) (models.PeriodCycle, error) {
	cycle, err := service.findOwnedCycle(cycleID, userID)
	if err != nil {
		return models.PeriodCycle{}, err
	}

	cycle.StartDate = dateOnly(input.StartDate)
	cycle.EndDate = dateOnly(input.EndDate)
	cycle.Notes = strings.TrimSpace(input.Notes)
	if cycle.EndDate.Before(cycle.StartDate) {
		return models.PeriodCycle{}, ErrInvalidDateRange
	}

	symptoms, err := service.buildSymptomRows(cycle, input.Symptoms)
	if err != nil {
		return models.PeriodCycle{}, err
	}

	if err := service.cycles.UpdateWithSymptoms(&cycle, symptoms); err != nil {
		return models.PeriodCycle{}, err
	}
	return cycle, nil
}

func (service *CycleService) Delete(cycleID uint, userID uint) error {
	cycle, err := service.findOwnedCycle(cycleID, userID)
	if err != nil {
		return err
	}
	return service.cycles.DeleteWithSymptoms(cycle.ID)
}

func (service *CycleService) AddSymptom(cycleID uint, userID uint, input SymptomInput) (models.CycleSymptom, error) {
	cycle, err := service.findOwnedCycle(cycleID, userID)
	if err != nil {
		return models.CycleSymptom{}, err
	}

	if err := service.validateSymptomInput(cycle, input); err != nil {
		return models.CycleSymptom{}, err
	}

	symptom := models.CycleSymptom{
		CycleID:   cycle.ID,
		SymptomID: input.SymptomID,
		Intensity: input.Intensity,
		Date:      dateOnly(input.Date),
	}
	if err := service.cycles.CreateSymptom(&symptom); err != nil {
		return models.CycleSymptom{}, err
	}
	return symptom, nil
}

func (service *CycleService) RemoveSymptom(cycleID uint, assocID uint, userID uint) error {
	cycle, err := service.findOwnedCycle(cycleID, userID)
	if err != nil {
		return err
	}

	symptom, err := service.cycles.FindSymptomByID(assocID)
	if err != nil || symptom.CycleID != cycle.ID {
		return ErrAssociationNotFound
	}
	return service.cycles.DeleteSymptom(symptom.ID)
}

func (service *CycleService) findOwnedCycle(cycleID uint, userID uint) (models.PeriodCycle, error) {
	cycle, err := service.cycles.FindByID(cycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PeriodCycle{}, ErrCycleNotFound
		}
		return models.PeriodCycle{}, err
	}
	if cycle.UserID != userID {
		return models.PeriodCycle{}, ErrNotOwner
	}
	return cycle, nil
}

func (service *CycleService) buildSymptomRows(cycle models.PeriodCycle, inputs []SymptomInput) ([]models.CycleSymptom, error) {
	symptoms := make([]models.CycleSymptom, 0, len(inputs))
	for _, input := range inputs {
		if err := service.validateSymptomInput(cycle, input); err != nil {
			return nil, err
		}
		symptoms = append(symptoms, models.CycleSymptom{
			SymptomID: input.SymptomID,
			Intensity: input.Intensity,
			Date:      dateOnly(input.Date),
		})
	}
	return symptoms, nil
}

// Checks run in a fixed order: catalog existence, then intensity bounds, then
// the date window. Exactly one error surfaces per failing input.
func (service *CycleService) validateSymptomInput(cycle models.PeriodCycle, input SymptomInput) error {
	if _, err := service.catalog.FindByID(input.SymptomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSymptomNotFound
		}
		return err
	}
	if input.Intensity < models.MinSymptomIntensity || input.Intensity > models.MaxSymptomIntensity {
		return ErrInvalidIntensity
	}

	day := dateOnly(input.Date)
	if !betweenInclusive(day, dateOnly(cycle.StartDate), dateOnly(cycle.EndDate)) {
		return ErrSymptomDateOutOfRange
	}
	return nil
}
