package services

import (
	"sort"
	"time"

	"github.com/cyclia-app/cyclia/internal/models"
)

const (
	ovulationOffsetDays  = 14
	fertileWindowDays    = 5
	minPlausibleCycleGap = 1
	maxPlausibleCycleGap = 59
)

// AveragePeriodLength is the rounded mean of cycle durations. The second return
// is false when the user has no cycles.
func AveragePeriodLength(cycles []models.PeriodCycle) (int, bool) {
	if len(cycles) == 0 {
		return 0, false
	}

	total := 0
	for _, cycle := range cycles {
		total += cycle.DurationDays()
	}
	return roundedMean(total, len(cycles)), true
}

// AverageCycleLength averages the gaps between consecutive cycle start dates,
// discarding implausible gaps (non-positive or 60 days and longer). The second
// return is false when fewer than two cycles exist or every gap was discarded.
func AverageCycleLength(cycles []models.PeriodCycle) (int, bool) {
	if len(cycles) < 2 {
		return 0, false
	}

	starts := make([]time.Time, 0, len(cycles))
	for _, cycle := range cycles {
		starts = append(starts, dateOnly(cycle.StartDate))
	}
	sort.Slice(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})

	total := 0
	counted := 0
	for i := 1; i < len(starts); i++ {
		gap := daysBetween(starts[i-1], starts[i])
		if gap < minPlausibleCycleGap || gap > maxPlausibleCycleGap {
			continue
		}
		total += gap
		counted++
	}
	if counted == 0 {
		return 0, false
	}
	return roundedMean(total, counted), true
}

// PredictNextPeriodStart adds the average cycle length to the most recent start
// date. It is only defined when the average itself is defined.
func PredictNextPeriodStart(cycles []models.PeriodCycle) (time.Time, bool) {
	averageLength, ok := AverageCycleLength(cycles)
	if !ok {
		return time.Time{}, false
	}

	latest := time.Time{}
	for _, cycle := range cycles {
		start := dateOnly(cycle.StartDate)
		if start.After(latest) {
			latest = start
		}
	}
	return latest.AddDate(0, 0, averageLength), true
}

// OvulationDate is a simplified estimate: cycle start plus fourteen days.
func OvulationDate(cycleStart time.Time) time.Time {
	return dateOnly(cycleStart).AddDate(0, 0, ovulationOffsetDays)
}

// FertileWindow covers the five days strictly before the ovulation estimate.
// The ovulation day itself is reported separately and classifies as
// "ovulation", never "fertile".
func FertileWindow(cycleStart time.Time) (time.Time, time.Time) {
	ovulation := OvulationDate(cycleStart)
	return ovulation.AddDate(0, 0, -fertileWindowDays), ovulation.AddDate(0, 0, -1)
}

type DayClassification struct {
	Date      string `json:"date"`
	Period    bool   `json:"period"`
	Fertile   bool   `json:"fertile"`
	Ovulation bool   `json:"ovulation"`
	Predicted bool   `json:"predicted"`
}

// ClassifyDay tags one date against the full cycle history. Period and
// fertile/ovulation tags are independent; ovulation wins over fertile.
func ClassifyDay(day time.Time, cycles []models.PeriodCycle, predictedStart time.Time, predictedLength int) DayClassification {
	// Stored dates and the requested day may carry different locations, so
	// every comparison runs on UTC calendar dates.
	target := utcDate(day)
	classification := DayClassification{Date: target.Format("2006-01-02")}

	for _, cycle := range cycles {
		start := utcDate(cycle.StartDate)
		end := utcDate(cycle.EndDate)
		if betweenInclusive(target, start, end) {
			classification.Period = true
		}

		ovulation := utcDate(OvulationDate(cycle.StartDate))
		if target.Equal(ovulation) {
			classification.Ovulation = true
			continue
		}
		fertileStart, fertileEnd := FertileWindow(cycle.StartDate)
		if betweenInclusive(target, utcDate(fertileStart), utcDate(fertileEnd)) {
			classification.Fertile = true
		}
	}
	if classification.Ovulation {
		classification.Fertile = false
	}

	if !predictedStart.IsZero() && predictedLength > 0 {
		start := utcDate(predictedStart)
		end := start.AddDate(0, 0, predictedLength-1)
		if betweenInclusive(target, start, end) {
			classification.Predicted = true
		}
	}

	return classification
}

func roundedMean(total int, count int) int {
	return int(float64(total)/float64(count) + 0.5)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func betweenInclusive(day, start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return (day.Equal(start) || day.After(start)) && (day.Equal(end) || day.Before(end))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func utcDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
