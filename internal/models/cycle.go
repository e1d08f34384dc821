package models

import "time"

const (
	MinSymptomIntensity = 1
	MaxSymptomIntensity = 5

	// DefaultPeriodLength is used for predicted-period rendering when a user
	// has no history to average yet.
	DefaultPeriodLength = 5
)

type PeriodCycle struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	StartDate time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time     `gorm:"type:date;not null" json:"end_date"`
	Notes     string        `json:"notes"`
	Symptoms  []CycleSymptom `gorm:"foreignKey:CycleID" json:"symptoms"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// DurationDays counts both endpoints, so a one-day cycle has duration 1.
func (cycle PeriodCycle) DurationDays() int {
	return int(cycle.EndDate.Sub(cycle.StartDate).Hours()/24) + 1
}

type CycleSymptom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CycleID   uint      `gorm:"not null;index" json:"cycle_id"`
	SymptomID uint      `gorm:"not null;index" json:"symptom_id"`
	Intensity int       `gorm:"not null" json:"intensity"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
