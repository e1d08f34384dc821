package services

import (
	"errors"
	"testing"

	"github.com/cyclia-app/cyclia/internal/models"
	"gorm.io/gorm"
)

type fakeCycleStore struct {
	nextCycleID   uint
	nextSymptomID uint
	cycles        map[uint]models.PeriodCycle
	symptoms      map[uint]models.CycleSymptom
}

func newFakeCycleStore() *fakeCycleStore {
	return &fakeCycleStore{
		nextCycleID:   1,
		nextSymptomID: 1,
		cycles:        make(map[uint]models.PeriodCycle),
		symptoms:      make(map[uint]models.CycleSymptom),
	}
}

func (store *fakeCycleStore) FindByID(cycleID uint) (models.PeriodCycle, error) {
	cycle, ok := store.cycles[cycleID]
	if !ok {
		return models.PeriodCycle{}, gorm.ErrRecordNotFound
	}
	return cycle, nil
}

func (store *fakeCycleStore) ListByUser(userID uint) ([]models.PeriodCycle, error) {
	cycles := make([]models.PeriodCycle, 0)
	for _, cycle := range store.cycles {
		if cycle.UserID == userID {
			cycles = append(cycles, cycle)
		}
	}
	return cycles, nil
}

func (store *fakeCycleStore) CreateWithSymptoms(cycle *models.PeriodCycle, symptoms []models.CycleSymptom) error {
	cycle.ID = store.nextCycleID
	store.nextCycleID++
	for index := range symptoms {
		symptoms[index].ID = store.nextSymptomID
		symptoms[index].CycleID = cycle.ID
		store.symptoms[symptoms[index].ID] = symptoms[index]
		store.nextSymptomID++
	}
	cycle.Symptoms = symptoms
	store.cycles[cycle.ID] = *cycle
	return nil
}

func (store *fakeCycleStore) UpdateWithSymptoms(cycle *models.PeriodCycle, symptoms []models.CycleSymptom) error {
	for id, symptom := range store.symptoms {
		if symptom.CycleID == cycle.ID {
			delete(store.symptoms, id)
		}
	}
	for index := range symptoms {
		symptoms[index].ID = store.nextSymptomID
		symptoms[index].CycleID = cycle.ID
		store.symptoms[symptoms[index].ID] = symptoms[index]
		store.nextSymptomID++
	}
	cycle.Symptoms = symptoms
	store.cycles[cycle.ID] = *cycle
	return nil
}

func (store *fakeCycleStore) DeleteWithSymptoms(cycleID uint) error {
	for id, symptom := range store.symptoms {
		if symptom.CycleID == cycleID {
			delete(store.symptoms, id)
		}
	}
	delete(store.cycles, cycleID)
	return nil
}

func (store *fakeCycleStore) CreateSymptom(symptom *models.CycleSymptom) error {
	symptom.ID = store.nextSymptomID
	store.nextSymptomID++
	store.symptoms[symptom.ID] = *symptom
	return nil
}

func (store *fakeCycleStore) FindSymptomByID(assocID uint) (models.CycleSymptom, error) {
	symptom, ok := store.symptoms[assocID]
	if !ok {
		return models.CycleSymptom{}, gorm.ErrRecordNotFound
	}
	return symptom, nil
}

func (store *fakeCycleStore) DeleteSymptom(assocID uint) error {
	delete(store.symptoms, assocID)
	return nil
}

type fakeSymptomCatalog struct {
	known map[uint]models.SymptomType
}

func (catalog *fakeSymptomCatalog) FindByID(symptomID uint) (models.SymptomType, error) {
	symptom, ok := catalog.known[symptomID]
	if !ok {
		return models.SymptomType{}, gorm.ErrRecordNotFound
	}
	return symptom, nil
}

func newTestCycleService() (*CycleService, *fakeCycleStore) {
	store := newFakeCycleStore()
	catalog := &fakeSymptomCatalog{known: map[uint]models.SymptomType{
		1: {ID: 1, Name: "Cramps"},
		2: {ID: 2, Name: "Headache"},
	}}
	return NewCycleService(store, catalog), store
}

func TestCreateRejectsEndBeforeStart(t *testing.T) {
	t.Parallel()

	service, store := newTestCycleService()
	_, err := service.Create(1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-05"),
		EndDate:   mustParseDay(t, "2024-03-01"),
	})

	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if len(store.cycles) != 0 {
		t.Fatal("expected no cycle persisted after validation failure")
	}
}

func TestCreateValidatesSymptomsBeforePersisting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   SymptomInput
		wantErr error
	}{
		{
			name:    "unknown symptom id",
			input:   SymptomInput{SymptomID: 99, Intensity: 3, Date: mustParseDay(t, "2024-03-02")},
			wantErr: ErrSymptomNotFound,
		},
		{
			name:    "intensity below range",
			input:   SymptomInput{SymptomID: 1, Intensity: 0, Date: mustParseDay(t, "2024-03-02")},
			wantErr: ErrInvalidIntensity,
		},
		{
			name:    "intensity above range",
			input:   SymptomInput{SymptomID: 1, Intensity: 6, Date: mustParseDay(t, "2024-03-02")},
			wantErr: ErrInvalidIntensity,
		},
		{
			name:    "date before cycle start",
			input:   SymptomInput{SymptomID: 1, Intensity: 3, Date: mustParseDay(t, "2024-02-28")},
			wantErr: ErrSymptomDateOutOfRange,
		},
		{
			name:    "date after cycle end",
			input:   SymptomInput{SymptomID: 1, Intensity: 3, Date: mustParseDay(t, "2024-03-09")},
			wantErr: ErrSymptomDateOutOfRange,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			service, store := newTestCycleService()
			_, err := service.Create(1, CycleInput{
				StartDate: mustParseDay(t, "2024-03-01"),
				EndDate:   mustParseDay(t, "2024-03-05"),
				Symptoms:  []SymptomInput{testCase.input},
			})

			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
			if len(store.cycles) != 0 || len(store.symptoms) != 0 {
				t.Fatal("expected nothing persisted after validation failure")
			}
		})
	}
}

func TestUnknownSymptomReportedBeforeBadIntensity(t *testing.T) {
	t.Parallel()

	service, _ := newTestCycleService()
	_, err := service.Create(1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-05"),
		Symptoms: []SymptomInput{
			{SymptomID: 99, Intensity: 0, Date: mustParseDay(t, "2024-01-01")},
		},
	})

	if !errors.Is(err, ErrSymptomNotFound) {
		t.Fatalf("expected existence check to fire first, got %v", err)
	}
}

func TestUpdateRequiresOwnership(t *testing.T) {
	t.Parallel()

	service, store := newTestCycleService()
	created, err := service.Create(1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-05"),
	})
	if err != nil {
		t.Fatalf("create cycle: %v", err)
	}

	_, err = service.Update(created.ID, 2, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-06"),
	})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	unchanged := store.cycles[created.ID]
	if got := unchanged.EndDate.Format("2006-01-02"); got != "2024-03-05" {
		t.Fatalf("expected target record unchanged, end date is %s", got)
	}
}

func TestUpdateUnknownCycleIsNotFound(t *testing.T) {
	t.Parallel()

	service, _ := newTestCycleService()
	_, err := service.Update(42, 1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-05"),
	})
	if !errors.Is(err, ErrCycleNotFound) {
		t.Fatalf("expected ErrCycleNotFound, got %v", err)
	}
}

func TestUpdateReplacesSymptomAssociations(t *testing.T) {
	t.Parallel()

	service, store := newTestCycleService()
	created, err := service.Create(1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-05"),
		Symptoms: []SymptomInput{
			{SymptomID: 1, Intensity: 3, Date: mustParseDay(t, "2024-03-02")},
			{SymptomID: 2, Intensity: 2, Date: mustParseDay(t, "2024-03-03")},
		},
	})
	if err != nil {
		t.Fatalf("create cycle: %v", err)
	}

	updated, err := service.Update(created.ID, 1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-05"),
		Symptoms: []SymptomInput{
			{SymptomID: 2, Intensity: 5, Date: mustParseDay(t, "2024-03-04")},
		},
	})
	if err != nil {
		t.Fatalf("update cycle: %v", err)
	}

	if len(updated.Symptoms) != 1 {
		t.Fatalf("expected 1 symptom after replacement, got %d", len(updated.Symptoms))
	}
	if len(store.symptoms) != 1 {
		t.Fatalf("expected old associations removed from store, %d remain", len(store.symptoms))
	}
	for _, symptom := range store.symptoms {
		if symptom.SymptomID != 2 || symptom.Intensity != 5 {
			t.Fatalf("unexpected surviving association: %+v", symptom)
		}
	}
}

func TestDeleteRemovesCycleAndAssociations(t *testing.T) {
	t.Parallel()

	service, store := newTestCycleService()
	created, err := service.Create(1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-05"),
		Symptoms: []SymptomInput{
			{SymptomID: 1, Intensity: 3, Date: mustParseDay(t, "2024-03-02")},
		},
	})
	if err != nil {
		t.Fatalf("create cycle: %v", err)
	}

	if err := service.Delete(created.ID, 1); err != nil {
		t.Fatalf("delete cycle: %v", err)
	}

	if len(store.cycles) != 0 || len(store.symptoms) != 0 {
		t.Fatal("expected cycle and its associations removed")
	}
	if _, err := service.Get(created.ID, 1); !errors.Is(err, ErrCycleNotFound) {
		t.Fatalf("expected ErrCycleNotFound after delete, got %v", err)
	}
}

func TestDeleteRequiresOwnership(t *testing.T) {
	t.Parallel()

	service, store := newTestCycleService()
	created, err := service.Create(1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-05"),
	})
	if err != nil {
		t.Fatalf("create cycle: %v", err)
	}

	if err := service.Delete(created.ID, 2); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if len(store.cycles) != 1 {
		t.Fatal("expected cycle to survive a forbidden delete")
	}
}

func TestRemoveSymptomChecksCycleBinding(t *testing.T) {
	t.Parallel()

	service, _ := newTestCycleService()
	first, err := service.Create(1, CycleInput{
		StartDate: mustParseDay(t, "2024-03-01"),
		EndDate:   mustParseDay(t, "2024-03-05"),
		Symptoms: []SymptomInput{
			{SymptomID: 1, Intensity: 3, Date: mustParseDay(t, "2024-03-02")},
		},
	})
	if err != nil {
		t.Fatalf("create first cycle: %v", err)
	}
	second, err := service.Create(1, CycleInput{
		StartDate: mustParseDay(t, "2024-04-01"),
		EndDate:   mustParseDay(t, "2024-04-05"),
	})
	if err != nil {
		t.Fatalf("create second cycle: %v", err)
	}

	assocID := first.Symptoms[0].ID
	if err := service.RemoveSymptom(second.ID, assocID, 1); !errors.Is(err, ErrAssociationNotFound) {
		t.Fatalf("expected ErrAssociationNotFound for foreign association, got %v", err)
	}
	if err := service.RemoveSymptom(first.ID, assocID, 1); err != nil {
		t.Fatalf("expected removal through the owning cycle to succeed, got %v", err)
	}
}
