package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/notification"
	"ministry-budget-api/internal/domain/user"
	"ministry-budget-api/internal/testutil/formmock"
	"ministry-budget-api/internal/testutil/ministrymock"
	ucNotification "ministry-budget-api/internal/usecase/notification"
)

func TestListNotifications(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	forms := &formmock.Repo{
		ListFn: func(ctx context.Context, fl domainForm.Filter) ([]domainForm.Form, error) {
			return []domainForm.Form{
				{ID: 1, FormNumber: "TVC-2026-0001", MinistryLeaderID: 7,
					Status: domainForm.StatusRejected, RejectedAt: &ts},
			}, nil
		},
	}
	h := NewNotificationHandler(ucNotification.NewUsecase(forms, &ministrymock.Repo{}))
	leader := user.Actor{ID: 7, Role: user.RoleMinistryLeader}

	c, rec := newEchoContext(t, http.MethodGet, "/api/notifications", "", &leader)
	if err := h.ListNotifications(c); err != nil {
		t.Fatalf("ListNotifications() error: %v", err)
	}
	var ns []notification.Notification
	if err := json.Unmarshal(rec.Body.Bytes(), &ns); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(ns) != 1 || ns[0].Type != notification.TypeRejected {
		t.Fatalf("notifications = %+v", ns)
	}

	// The same request with the dismissal key appended returns nothing.
	target := "/api/notifications?dismissed=stale-key," + ns[0].DismissKey
	c, rec = newEchoContext(t, http.MethodGet, target, "", &leader)
	if err := h.ListNotifications(c); err != nil {
		t.Fatalf("ListNotifications() error: %v", err)
	}
	var after []notification.Notification
	if err := json.Unmarshal(rec.Body.Bytes(), &after); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("dismissed notification still returned: %+v", after)
	}
}
