package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/cyclia-app/cyclia/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{"Start", "End", "Duration (days)", "Symptom entries", "Notes"}

type ExportCycleReader interface {
	ListByUser(userID uint) ([]models.PeriodCycle, error)
}

type ExportService struct {
	cycles ExportCycleReader
}

func NewExportService(cycles ExportCycleReader) *ExportService {
	return &ExportService{cycles: cycles}
}

type ExportedCycle struct {
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	DurationDays int                   `json:"duration_days"`
	Notes        string                `json:"notes"`
	Symptoms     []models.CycleSymptom `json:"symptoms"`
}

type ExportDump struct {
	GeneratedAt time.Time       `json:"generated_at"`
	CycleCount  int             `json:"cycle_count"`
	Cycles      []ExportedCycle `json:"cycles"`
}

func (service *ExportService) BuildDump(userID uint, now time.Time) (ExportDump, error) {
	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return ExportDump{}, err
	}

	exported := make([]ExportedCycle, 0, len(cycles))
	for _, cycle := range cycles {
		exported = append(exported, ExportedCycle{
			StartDate:    cycle.StartDate.Format(exportDateLayout),
			EndDate:      cycle.EndDate.Format(exportDateLayout),
			DurationDays: cycle.DurationDays(),
			Notes:        cycle.Notes,
			Symptoms:     cycle.Symptoms,
		})
	}

	return ExportDump{
		GeneratedAt: now,
		CycleCount:  len(exported),
		Cycles:      exported,
	}, nil
}

// WriteCSV streams one row per cycle, most recent first.
func (service *ExportService) WriteCSV(userID uint, out io.Writer) error {
	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return err
	}
	for _, cycle := range cycles {
		row := []string{
			cycle.StartDate.Format(exportDateLayout),
			cycle.EndDate.Format(exportDateLayout),
			strconv.Itoa(cycle.DurationDays()),
			strconv.Itoa(len(cycle.Symptoms)),
			cycle.Notes,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
