package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/ministry"
	"ministry-budget-api/internal/domain/uow"
	"ministry-budget-api/internal/domain/user"
	"ministry-budget-api/internal/testutil/auditmock"
	"ministry-budget-api/internal/testutil/formmock"
	"ministry-budget-api/internal/testutil/ministrymock"
	"ministry-budget-api/internal/testutil/uowmock"
	ucForm "ministry-budget-api/internal/usecase/form"
)

func formHandler(forms *formmock.Repo, ministries *ministrymock.Repo) *FormHandler {
	events := &formmock.EventRepo{}
	goals := &formmock.GoalRepo{}
	tx := &uowmock.UoW{Repos: uow.Repos{Forms: forms, Events: events, Goals: goals, Ministries: ministries}}
	return NewFormHandler(ucForm.NewUsecase(forms, events, goals, &auditmock.Appender{}, tx, quietLogger()))
}

func TestCreateForm(t *testing.T) {
	leader := user.Actor{ID: 7, Role: user.RoleMinistryLeader}
	year := time.Now().UTC().Year()

	forms := &formmock.Repo{
		CreateFn: func(ctx context.Context, f *domainForm.Form) error { f.ID = 1; return nil },
	}
	ministries := &ministrymock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*ministry.Ministry, error) {
			return &ministry.Ministry{ID: id, Name: "Worship", Active: true}, nil
		},
	}
	h := formHandler(forms, ministries)

	t.Run("creates a draft", func(t *testing.T) {
		body := `{"ministry_id":3,"sections":{"total_budget":1500}}`
		c, rec := newEchoContext(t, http.MethodPost, "/api/forms", body, &leader)
		if err := h.CreateForm(c); err != nil {
			t.Fatalf("CreateForm() error: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var dto ucForm.FormDTO
		if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if want := fmt.Sprintf("TVC-%d-0001", year); dto.FormNumber != want {
			t.Fatalf("form number = %s, want %s", dto.FormNumber, want)
		}
		if dto.Status != domainForm.StatusDraft {
			t.Fatalf("status = %s, want draft", dto.Status)
		}
	})

	t.Run("missing ministry id fails validation", func(t *testing.T) {
		c, rec := newEchoContext(t, http.MethodPost, "/api/forms", `{"sections":{}}`, &leader)
		if err := h.CreateForm(c); err != nil {
			t.Fatalf("CreateForm() error: %v", err)
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("pillar is forbidden", func(t *testing.T) {
		body := `{"ministry_id":3}`
		c, rec := newEchoContext(t, http.MethodPost, "/api/forms", body, &user.Actor{ID: 5, Role: user.RolePillar})
		if err := h.CreateForm(c); err != nil {
			t.Fatalf("CreateForm() error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})
}

func TestGetFormScoping(t *testing.T) {
	f := &domainForm.Form{ID: 1, FormNumber: "TVC-2026-0001", MinistryLeaderID: 7, Status: domainForm.StatusDraft}
	forms := &formmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domainForm.Form, error) { return f, nil },
	}
	h := formHandler(forms, &ministrymock.Repo{})

	t.Run("owner reads own form", func(t *testing.T) {
		c, rec := newEchoContext(t, http.MethodGet, "/api/forms/1", "", &user.Actor{ID: 7, Role: user.RoleMinistryLeader})
		c.SetParamNames("id")
		c.SetParamValues("1")
		if err := h.GetForm(c); err != nil {
			t.Fatalf("GetForm() error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("foreign leader is forbidden", func(t *testing.T) {
		c, rec := newEchoContext(t, http.MethodGet, "/api/forms/1", "", &user.Actor{ID: 8, Role: user.RoleMinistryLeader})
		c.SetParamNames("id")
		c.SetParamValues("1")
		if err := h.GetForm(c); err != nil {
			t.Fatalf("GetForm() error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})
}

func TestNextNumberEndpoint(t *testing.T) {
	forms := &formmock.Repo{
		MaxSequenceFn: func(ctx context.Context, year int) (int, error) { return 41, nil },
	}
	h := formHandler(forms, &ministrymock.Repo{})
	leader := user.Actor{ID: 7, Role: user.RoleMinistryLeader}

	c, rec := newEchoContext(t, http.MethodGet, "/api/forms/next-number?year=2026", "", &leader)
	if err := h.NextNumber(c); err != nil {
		t.Fatalf("NextNumber() error: %v", err)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["form_number"] != "TVC-2026-0042" {
		t.Fatalf("form_number = %q, want TVC-2026-0042", resp["form_number"])
	}

	c, rec = newEchoContext(t, http.MethodGet, "/api/forms/next-number?year=twenty", "", &leader)
	if err := h.NextNumber(c); err != nil {
		t.Fatalf("NextNumber() error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
