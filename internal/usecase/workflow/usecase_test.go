package workflow

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"ministry-budget-api/internal/domain/audit"
	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/uow"
	"ministry-budget-api/internal/domain/user"
	"ministry-budget-api/internal/testutil/auditmock"
	"ministry-budget-api/internal/testutil/formmock"
	"ministry-budget-api/internal/testutil/uowmock"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newUsecase(forms *formmock.Repo, audits *auditmock.Appender) *Usecase {
	tx := &uowmock.UoW{Repos: uow.Repos{Forms: forms}}
	return NewUsecase(forms, audits, tx, quietLogger())
}

func pendingForm(status domainForm.Status) *domainForm.Form {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &domainForm.Form{
		ID:               1,
		FormNumber:       "TVC-2026-0001",
		MinistryID:       3,
		MinistryLeaderID: 7,
		Status:           status,
		SubmittedAt:      &now,
	}
}

func TestSubmit(t *testing.T) {
	leader := user.Actor{ID: 7, Role: user.RoleMinistryLeader}

	t.Run("owner submits draft", func(t *testing.T) {
		f := pendingForm(domainForm.StatusDraft)
		f.SubmittedAt = nil
		var saved *domainForm.Form
		forms := &formmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return f, nil },
			SaveFn:             func(ctx context.Context, f *domainForm.Form) error { saved = f; return nil },
		}
		audits := &auditmock.Appender{}

		dto, err := newUsecase(forms, audits).Submit(context.Background(), 1, leader)
		if err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
		if dto.Status != domainForm.StatusPendingPillar {
			t.Fatalf("status = %s, want %s", dto.Status, domainForm.StatusPendingPillar)
		}
		if saved == nil || saved.SubmittedAt == nil {
			t.Fatal("form not saved with SubmittedAt set")
		}
		if e := audits.Last(); e == nil || e.Action != audit.ActionFormSubmitted {
			t.Fatalf("audit entry = %+v, want %s", e, audit.ActionFormSubmitted)
		}
	})

	t.Run("leader cannot submit someone else's form", func(t *testing.T) {
		f := pendingForm(domainForm.StatusDraft)
		f.MinistryLeaderID = 42
		forms := &formmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return f, nil },
		}
		audits := &auditmock.Appender{}

		_, err := newUsecase(forms, audits).Submit(context.Background(), 1, leader)
		if !errors.Is(err, domainForm.ErrForbidden) {
			t.Fatalf("Submit() error = %v, want ErrForbidden", err)
		}
		if audits.Last() != nil {
			t.Fatal("audit written for a rejected submission")
		}
	})

	t.Run("missing form", func(t *testing.T) {
		forms := &formmock.Repo{}
		_, err := newUsecase(forms, &auditmock.Appender{}).Submit(context.Background(), 99, leader)
		if !errors.Is(err, domainForm.ErrNotFound) {
			t.Fatalf("Submit() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("resubmitting a pending form", func(t *testing.T) {
		f := pendingForm(domainForm.StatusPendingPillar)
		forms := &formmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return f, nil },
		}
		_, err := newUsecase(forms, &auditmock.Appender{}).Submit(context.Background(), 1, leader)
		if !errors.Is(err, domainForm.ErrInvalidStage) {
			t.Fatalf("Submit() error = %v, want ErrInvalidStage", err)
		}
	})
}

func TestDecide(t *testing.T) {
	pillar := user.Actor{ID: 5, Role: user.RolePillar}
	pastor := user.Actor{ID: 6, Role: user.RolePastor}

	tests := []struct {
		name       string
		status     domainForm.Status
		in         DecideInput
		actor      user.Actor
		wantStatus domainForm.Status
		wantAudit  string
		wantErr    error
	}{
		{
			name:       "pillar approves",
			status:     domainForm.StatusPendingPillar,
			in:         DecideInput{FormID: 1, Action: "approve"},
			actor:      pillar,
			wantStatus: domainForm.StatusPendingPastor,
			wantAudit:  audit.ActionFormApproved,
		},
		{
			name:       "pillar rejects with comments",
			status:     domainForm.StatusPendingPillar,
			in:         DecideInput{FormID: 1, Action: "reject", Comments: "budget too high"},
			actor:      pillar,
			wantStatus: domainForm.StatusRejected,
			wantAudit:  audit.ActionFormRejected,
		},
		{
			name:       "pastor approves",
			status:     domainForm.StatusPendingPastor,
			in:         DecideInput{FormID: 1, Action: "approve"},
			actor:      pastor,
			wantStatus: domainForm.StatusApproved,
			wantAudit:  audit.ActionFormApproved,
		},
		{
			name:    "pastor acts at pillar stage",
			status:  domainForm.StatusPendingPillar,
			in:      DecideInput{FormID: 1, Action: "approve"},
			actor:   pastor,
			wantErr: domainForm.ErrInvalidStage,
		},
		{
			name:    "second decision on an already-advanced form",
			status:  domainForm.StatusPendingPastor,
			in:      DecideInput{FormID: 1, Action: "approve"},
			actor:   pillar,
			wantErr: domainForm.ErrInvalidStage,
		},
		{
			name:    "leader cannot decide",
			status:  domainForm.StatusPendingPillar,
			in:      DecideInput{FormID: 1, Action: "approve"},
			actor:   user.Actor{ID: 7, Role: user.RoleMinistryLeader},
			wantErr: domainForm.ErrForbidden,
		},
		{
			name:    "unknown action",
			status:  domainForm.StatusPendingPillar,
			in:      DecideInput{FormID: 1, Action: "escalate"},
			actor:   pillar,
			wantErr: domainForm.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := pendingForm(tc.status)
			forms := &formmock.Repo{
				GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return f, nil },
			}
			audits := &auditmock.Appender{}

			dto, err := newUsecase(forms, audits).Decide(context.Background(), tc.in, tc.actor)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Decide() error = %v, want %v", err, tc.wantErr)
				}
				if audits.Last() != nil {
					t.Fatal("audit written for a failed decision")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decide() unexpected error: %v", err)
			}
			if dto.Status != tc.wantStatus {
				t.Fatalf("status = %s, want %s", dto.Status, tc.wantStatus)
			}
			if e := audits.Last(); e == nil || e.Action != tc.wantAudit {
				t.Fatalf("audit entry = %+v, want %s", e, tc.wantAudit)
			}
		})
	}
}

func TestDecideStoresStageComments(t *testing.T) {
	f := pendingForm(domainForm.StatusPendingPillar)
	var saved *domainForm.Form
	forms := &formmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return f, nil },
		SaveFn:             func(ctx context.Context, f *domainForm.Form) error { saved = f; return nil },
	}

	in := DecideInput{FormID: 1, Action: "reject", Comments: "venue cost unclear"}
	_, err := newUsecase(forms, &auditmock.Appender{}).Decide(context.Background(), in, user.Actor{ID: 5, Role: user.RolePillar})
	if err != nil {
		t.Fatalf("Decide() error: %v", err)
	}
	if saved.PillarComments != "venue cost unclear" {
		t.Fatalf("PillarComments = %q", saved.PillarComments)
	}
	if saved.PastorComments != "" {
		t.Fatalf("PastorComments = %q, want empty", saved.PastorComments)
	}
}

func TestDecideToleratesAuditFailure(t *testing.T) {
	f := pendingForm(domainForm.StatusPendingPillar)
	forms := &formmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return f, nil },
	}
	audits := &auditmock.Appender{Err: errors.New("sink down")}

	dto, err := newUsecase(forms, audits).Decide(context.Background(),
		DecideInput{FormID: 1, Action: "approve"}, user.Actor{ID: 5, Role: user.RolePillar})
	if err != nil {
		t.Fatalf("Decide() error = %v, audit failure must not fail the action", err)
	}
	if dto.Status != domainForm.StatusPendingPastor {
		t.Fatalf("status = %s, want %s", dto.Status, domainForm.StatusPendingPastor)
	}
}

func TestCanEdit(t *testing.T) {
	leader := user.Actor{ID: 7, Role: user.RoleMinistryLeader}

	t.Run("missing form yields a denial, not an error", func(t *testing.T) {
		forms := &formmock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		d, err := newUsecase(forms, &auditmock.Appender{}).CanEdit(context.Background(), 99, leader)
		if err != nil {
			t.Fatalf("CanEdit() error: %v", err)
		}
		if d.Allowed {
			t.Fatal("missing form reported editable")
		}
	})

	t.Run("owner of a draft may edit", func(t *testing.T) {
		f := pendingForm(domainForm.StatusDraft)
		forms := &formmock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return f, nil },
		}
		d, err := newUsecase(forms, &auditmock.Appender{}).CanEdit(context.Background(), 1, leader)
		if err != nil {
			t.Fatalf("CanEdit() error: %v", err)
		}
		if !d.Allowed {
			t.Fatalf("owner denied: %s", d.Reason)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		boom := errors.New("db down")
		forms := &formmock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return nil, boom },
		}
		_, err := newUsecase(forms, &auditmock.Appender{}).CanEdit(context.Background(), 1, leader)
		if !errors.Is(err, boom) {
			t.Fatalf("CanEdit() error = %v, want %v", err, boom)
		}
	})
}
