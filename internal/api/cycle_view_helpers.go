package api

import (
	"github.com/cyclia-app/cyclia/internal/models"
)

const dateLayout = "2006-01-02"

type cycleSymptomView struct {
	ID        uint   `json:"id"`
	SymptomID uint   `json:"symptom_id"`
	Intensity int    `json:"intensity"`
	Date      string `json:"date"`
}

type cycleView struct {
	ID           uint               `json:"id"`
	UserID       uint               `json:"user_id"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	DurationDays int                `json:"duration_days"`
	Notes        string             `json:"notes"`
	Symptoms     []cycleSymptomView `json:"symptoms"`
}

func buildCycleView(cycle models.PeriodCycle) cycleView {
	symptoms := make([]cycleSymptomView, 0, len(cycle.Symptoms))
	for _, symptom := range cycle.Symptoms {
		symptoms = append(symptoms, buildCycleSymptomView(symptom))
	}

	return cycleView{
		ID:           cycle.ID,
		UserID:       cycle.UserID,
		StartDate:    cycle.StartDate.Format(dateLayout),
		EndDate:      cycle.EndDate.Format(dateLayout),
		DurationDays: cycle.DurationDays(),
		Notes:        cycle.Notes,
		Symptoms:     symptoms,
	}
}

func buildCycleSymptomView(symptom models.CycleSymptom) cycleSymptomView {
	return cycleSymptomView{
		ID:        symptom.ID,
		SymptomID: symptom.SymptomID,
		Intensity: symptom.Intensity,
		Date:      symptom.Date.Format(dateLayout),
	}
}

func buildCycleListView(cycles []models.PeriodCycle) []cycleView {
	views := make([]cycleView, 0, len(cycles))
	for _, cycle := range cycles {
		views = append(views, buildCycleView(cycle))
	}
	return views
}
