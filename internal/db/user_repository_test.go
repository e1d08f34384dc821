package db

import (
	"errors"
	"testing"
	"time"

	"github.com/cyclia-app/cyclia/internal/models"
	"gorm.io/gorm"
)

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	repos := NewRepositories(openTestDatabase(t))
	createTestUser(t, repos, "duplicate@example.com")

	duplicate := models.User{
		Email:        "duplicate@example.com",
		PasswordHash: "other-hash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repos.Users.Create(&duplicate); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey from the unique email index, got %v", err)
	}

	exists, err := repos.Users.ExistsByNormalizedEmailExcluding("duplicate@example.com", 0)
	if err != nil {
		t.Fatalf("exists lookup: %v", err)
	}
	if !exists {
		t.Fatal("expected original row to survive")
	}
}

func TestExistsByNormalizedEmailExcludingSkipsOwnRow(t *testing.T) {
	t.Parallel()

	repos := NewRepositories(openTestDatabase(t))
	user := createTestUser(t, repos, "self@example.com")

	exists, err := repos.Users.ExistsByNormalizedEmailExcluding("self@example.com", user.ID)
	if err != nil {
		t.Fatalf("exists lookup: %v", err)
	}
	if exists {
		t.Fatal("expected own row to be excluded from the conflict check")
	}
}

func TestFindByNormalizedEmail(t *testing.T) {
	t.Parallel()

	repos := NewRepositories(openTestDatabase(t))
	created := createTestUser(t, repos, "finder@example.com")

	found, err := repos.Users.FindByNormalizedEmail("finder@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, found.ID)
	}
}

func TestUpdatePasswordAndRecoveryCodeRotatesBoth(t *testing.T) {
	t.Parallel()

	repos := NewRepositories(openTestDatabase(t))
	user := createTestUser(t, repos, "rotate-both@example.com")

	if err := repos.Users.UpdatePasswordAndRecoveryCode(user.ID, "new-password-hash", "new-recovery-hash"); err != nil {
		t.Fatalf("rotate credentials: %v", err)
	}

	updated, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if updated.PasswordHash != "new-password-hash" {
		t.Fatalf("expected rotated password hash, got %q", updated.PasswordHash)
	}
	if updated.RecoveryCodeHash != "new-recovery-hash" {
		t.Fatalf("expected rotated recovery code hash, got %q", updated.RecoveryCodeHash)
	}
}

func TestDeleteAccountAndRelatedDataCascades(t *testing.T) {
	t.Parallel()

	repos := NewRepositories(openTestDatabase(t))
	user := createTestUser(t, repos, "cascade-account@example.com")
	survivor := createTestUser(t, repos, "survivor@example.com")

	for _, owner := range []uint{user.ID, survivor.ID} {
		cycle := models.PeriodCycle{
			UserID:    owner,
			StartDate: mustDay(t, "2024-03-01"),
			EndDate:   mustDay(t, "2024-03-05"),
		}
		if err := repos.Cycles.CreateWithSymptoms(&cycle, []models.CycleSymptom{
			{SymptomID: 1, Intensity: 3, Date: mustDay(t, "2024-03-02")},
		}); err != nil {
			t.Fatalf("create cycle for user %d: %v", owner, err)
		}
	}

	if err := repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	if _, err := repos.Users.FindByID(user.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	orphaned, err := repos.Cycles.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list deleted user's cycles: %v", err)
	}
	if len(orphaned) != 0 {
		t.Fatalf("expected no orphaned cycles, got %d", len(orphaned))
	}

	kept, err := repos.Cycles.ListByUser(survivor.ID)
	if err != nil {
		t.Fatalf("list survivor's cycles: %v", err)
	}
	if len(kept) != 1 || len(kept[0].Symptoms) != 1 {
		t.Fatal("expected the other user's data untouched")
	}
}
