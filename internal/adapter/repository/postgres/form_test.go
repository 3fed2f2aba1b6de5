package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/ministry"
	"ministry-budget-api/internal/domain/uow"
	"ministry-budget-api/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB runs the repository suite against in-memory SQLite. Postgres-only
// paths (row locks, JSON aggregation) are exercised in integration, not here.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &ministry.Ministry{}, &ministry.EventType{}, &domainForm.Form{}, &domainForm.Event{}, &domainForm.Goal{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedForm(t *testing.T, repo *FormRepository, number string, ministryID, leaderID uint64, status domainForm.Status) *domainForm.Form {
	t.Helper()
	f := &domainForm.Form{
		FormNumber:       number,
		MinistryID:       ministryID,
		MinistryLeaderID: leaderID,
		Sections:         []byte(`{"total_budget":1000}`),
		Status:           status,
	}
	if err := repo.Create(context.Background(), f); err != nil {
		t.Fatalf("seed %s: %v", number, err)
	}
	return f
}

func TestFormRepositoryCRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewFormRepository(db)
	ctx := context.Background()

	created := seedForm(t, repo, "TVC-2026-0001", 10, 7, domainForm.StatusDraft)
	if created.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FormNumber != "TVC-2026-0001" || got.Status != domainForm.StatusDraft {
		t.Fatalf("got %+v", got)
	}

	now := time.Now().UTC()
	got.Status = domainForm.StatusPendingPillar
	got.SubmittedAt = &now
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	reloaded, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID after save: %v", err)
	}
	if reloaded.Status != domainForm.StatusPendingPillar || reloaded.SubmittedAt == nil {
		t.Fatalf("reloaded %+v", reloaded)
	}

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByID(missing) = %v, want ErrRecordNotFound", err)
	}
}

func TestFormRepositoryUniqueNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewFormRepository(db)

	seedForm(t, repo, "TVC-2026-0001", 10, 7, domainForm.StatusDraft)
	dup := &domainForm.Form{FormNumber: "TVC-2026-0001", MinistryID: 10, MinistryLeaderID: 7, Status: domainForm.StatusDraft}
	err := repo.Create(context.Background(), dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate Create = %v, want ErrDuplicatedKey", err)
	}
}

func TestFormRepositoryList(t *testing.T) {
	db := openTestDB(t)
	repo := NewFormRepository(db)
	ctx := context.Background()

	seedForm(t, repo, "TVC-2026-0001", 10, 7, domainForm.StatusDraft)
	seedForm(t, repo, "TVC-2026-0002", 10, 7, domainForm.StatusPendingPillar)
	seedForm(t, repo, "TVC-2026-0003", 11, 8, domainForm.StatusPendingPillar)
	seedForm(t, repo, "TVC-2026-0004", 12, 8, domainForm.StatusApproved)

	tests := []struct {
		name    string
		filter  domainForm.Filter
		wantLen int
	}{
		{"no filter returns all", domainForm.Filter{}, 4},
		{"by leader", domainForm.Filter{MinistryLeaderID: 7}, 2},
		{"by ministries", domainForm.Filter{MinistryIDs: []uint64{11, 12}}, 2},
		{"by status", domainForm.Filter{Statuses: []domainForm.Status{domainForm.StatusPendingPillar}}, 2},
		{"combined", domainForm.Filter{MinistryIDs: []uint64{10, 11}, Statuses: []domainForm.Status{domainForm.StatusPendingPillar}}, 2},
		{"no match", domainForm.Filter{MinistryLeaderID: 99}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != tc.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tc.wantLen)
			}
		})
	}
}

func TestFormRepositoryMaxSequence(t *testing.T) {
	db := openTestDB(t)
	repo := NewFormRepository(db)
	ctx := context.Background()

	seq, err := repo.MaxSequence(ctx, 2026)
	if err != nil {
		t.Fatalf("MaxSequence on empty table: %v", err)
	}
	if seq != 0 {
		t.Fatalf("empty-table sequence = %d, want 0", seq)
	}

	seedForm(t, repo, "TVC-2026-0001", 10, 7, domainForm.StatusDraft)
	seedForm(t, repo, "TVC-2026-0012", 10, 7, domainForm.StatusDraft)
	seedForm(t, repo, "TVC-2025-0099", 10, 7, domainForm.StatusApproved)

	seq, err = repo.MaxSequence(ctx, 2026)
	if err != nil {
		t.Fatalf("MaxSequence: %v", err)
	}
	if seq != 12 {
		t.Fatalf("sequence = %d, want 12", seq)
	}

	seq, err = repo.MaxSequence(ctx, 2025)
	if err != nil {
		t.Fatalf("MaxSequence(2025): %v", err)
	}
	if seq != 99 {
		t.Fatalf("2025 sequence = %d, want 99", seq)
	}
}

func TestFormRepositoryMaxSequenceBeyondFourDigits(t *testing.T) {
	db := openTestDB(t)
	repo := NewFormRepository(db)
	ctx := context.Background()

	// A five-digit sequence sorts below "TVC-2026-9999" lexicographically,
	// so the ordering has to be numeric-aware or allocation stalls at 9999.
	seedForm(t, repo, "TVC-2026-9999", 10, 7, domainForm.StatusDraft)
	seedForm(t, repo, "TVC-2026-10000", 10, 7, domainForm.StatusDraft)

	seq, err := repo.MaxSequence(ctx, 2026)
	if err != nil {
		t.Fatalf("MaxSequence: %v", err)
	}
	if seq != 10000 {
		t.Fatalf("sequence = %d, want 10000", seq)
	}
}

func TestFormRepositoryCounts(t *testing.T) {
	db := openTestDB(t)
	repo := NewFormRepository(db)
	ctx := context.Background()

	seedForm(t, repo, "TVC-2026-0001", 10, 7, domainForm.StatusDraft)
	seedForm(t, repo, "TVC-2026-0002", 10, 7, domainForm.StatusPendingPillar)
	seedForm(t, repo, "TVC-2026-0003", 11, 8, domainForm.StatusApproved)

	if n, err := repo.CountByMinistry(ctx, 10); err != nil || n != 2 {
		t.Fatalf("CountByMinistry = %d, %v, want 2", n, err)
	}
	if n, err := repo.CountByLeader(ctx, 8); err != nil || n != 1 {
		t.Fatalf("CountByLeader = %d, %v, want 1", n, err)
	}
	if n, err := repo.CountByStatus(ctx); err != nil || n != 3 {
		t.Fatalf("CountByStatus() = %d, %v, want 3", n, err)
	}
	if n, err := repo.CountByStatus(ctx, domainForm.StatusDraft, domainForm.StatusApproved); err != nil || n != 2 {
		t.Fatalf("CountByStatus(draft,approved) = %d, %v, want 2", n, err)
	}
}

func TestGormUoWRollsBack(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("abort")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		f := &domainForm.Form{FormNumber: "TVC-2026-0001", MinistryID: 10, MinistryLeaderID: 7, Status: domainForm.StatusDraft}
		if err := r.Forms.Create(ctx, f); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithinTx error = %v, want %v", err, boom)
	}

	forms, err := NewFormRepository(db).List(ctx, domainForm.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(forms) != 0 {
		t.Fatalf("rolled-back insert visible: %d forms", len(forms))
	}
}

func TestUserRepositoryNormalizesEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{FullName: "A", Email: "Leader@TVC.org", Role: user.RoleMinistryLeader, PIN: "1234", Active: true}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "leader@tvc.org" {
		t.Fatalf("stored email = %q, want lowercased", got.Email)
	}

	got.Email = "Leader@Renamed.org"
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	saved, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID after save: %v", err)
	}
	if saved.Email != "leader@renamed.org" {
		t.Fatalf("saved email = %q, want lowercased", saved.Email)
	}
}
