package services

import (
	"time"

	"github.com/cyclia-app/cyclia/internal/models"
)

type StatsCycleReader interface {
	ListByUserStartAscending(userID uint) ([]models.PeriodCycle, error)
}

type StatsService struct {
	cycles StatsCycleReader
}

func NewStatsService(cycles StatsCycleReader) *StatsService {
	return &StatsService{cycles: cycles}
}

// CycleStats carries nil for values that are undefined with the user's current
// history, so they serialize as JSON null rather than a misleading zero.
type CycleStats struct {
	CycleCount           int        `json:"cycle_count"`
	AveragePeriodLength  *int       `json:"average_period_length"`
	AverageCycleLength   *int       `json:"average_cycle_length"`
	LastPeriodStart      *time.Time `json:"last_period_start"`
	NextPeriodStart      *time.Time `json:"next_period_start"`
	OvulationDate        *time.Time `json:"ovulation_date"`
	FertilityWindowStart *time.Time `json:"fertility_window_start"`
	FertilityWindowEnd   *time.Time `json:"fertility_window_end"`
}

func (service *StatsService) BuildOverview(userID uint) (CycleStats, error) {
	cycles, err := service.cycles.ListByUserStartAscending(userID)
	if err != nil {
		return CycleStats{}, err
	}
	return BuildCycleStats(cycles), nil
}

func BuildCycleStats(cycles []models.PeriodCycle) CycleStats {
	stats := CycleStats{CycleCount: len(cycles)}
	if len(cycles) == 0 {
		return stats
	}

	if averagePeriod, ok := AveragePeriodLength(cycles); ok {
		stats.AveragePeriodLength = &averagePeriod
	}
	if averageCycle, ok := AverageCycleLength(cycles); ok {
		stats.AverageCycleLength = &averageCycle
	}

	lastStart := dateOnly(cycles[0].StartDate)
	for _, cycle := range cycles {
		start := dateOnly(cycle.StartDate)
		if start.After(lastStart) {
			lastStart = start
		}
	}
	stats.LastPeriodStart = &lastStart

	if nextStart, ok := PredictNextPeriodStart(cycles); ok {
		stats.NextPeriodStart = &nextStart
	}

	ovulation := OvulationDate(lastStart)
	fertileStart, fertileEnd := FertileWindow(lastStart)
	stats.OvulationDate = &ovulation
	stats.FertilityWindowStart = &fertileStart
	stats.FertilityWindowEnd = &fertileEnd

	return stats
}

// BuildMonthView classifies every day of the requested month for calendar
// rendering.
func (service *StatsService) BuildMonthView(userID uint, year int, month time.Month, location *time.Location) ([]DayClassification, error) {
	cycles, err := service.cycles.ListByUserStartAscending(userID)
	if err != nil {
		return nil, err
	}

	predictedStart := time.Time{}
	predictedLength := 0
	if nextStart, ok := PredictNextPeriodStart(cycles); ok {
		predictedStart = nextStart
		predictedLength = models.DefaultPeriodLength
		if averagePeriod, ok := AveragePeriodLength(cycles); ok {
			predictedLength = averagePeriod
		}
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, location)
	days := make([]DayClassification, 0, 31)
	for day := firstDay; day.Month() == month; day = day.AddDate(0, 0, 1) {
		days = append(days, ClassifyDay(day, cycles, predictedStart, predictedLength))
	}
	return days, nil
}
