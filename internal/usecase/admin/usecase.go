// Package admin manages reference data (ministries, event types, users)
// and the dashboard stats. All operations here assume the caller has
// already been gated to the admin role by the HTTP layer.
package admin

import (
	"context"
	"errors"
	"fmt"

	"ministry-budget-api/internal/domain/audit"
	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/ministry"
	"ministry-budget-api/internal/domain/user"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Usecase struct {
	users      user.Repository
	ministries ministry.Repository
	eventTypes ministry.EventTypeRepository
	forms      domainForm.Repository
	audits     audit.Log
	log        *logrus.Logger
}

func NewUsecase(
	users user.Repository,
	ministries ministry.Repository,
	eventTypes ministry.EventTypeRepository,
	forms domainForm.Repository,
	audits audit.Log,
	log *logrus.Logger,
) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{
		users:      users,
		ministries: ministries,
		eventTypes: eventTypes,
		forms:      forms,
		audits:     audits,
		log:        log,
	}
}

type StatsDTO struct {
	TotalForms       int64   `json:"total_forms"`
	PendingForms     int64   `json:"pending_forms"`
	ApprovedForms    int64   `json:"approved_forms"`
	TotalBudget      float64 `json:"total_budget"`
	TotalUsers       int     `json:"total_users"`
	ActiveUsers      int     `json:"active_users"`
	Ministries       int     `json:"total_ministries"`
	ActiveMinistries int     `json:"active_ministries"`
	EventTypes       int     `json:"total_event_types"`
}

func (u *Usecase) Stats(ctx context.Context) (*StatsDTO, error) {
	total, err := u.forms.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.forms.CountByStatus(ctx, domainForm.StatusPendingPillar, domainForm.StatusPendingPastor)
	if err != nil {
		return nil, err
	}
	approved, err := u.forms.CountByStatus(ctx, domainForm.StatusApproved)
	if err != nil {
		return nil, err
	}
	budget, err := u.forms.ApprovedBudgetTotal(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	ministries, err := u.ministries.List(ctx)
	if err != nil {
		return nil, err
	}
	eventTypes, err := u.eventTypes.List(ctx)
	if err != nil {
		return nil, err
	}

	s := &StatsDTO{
		TotalForms:    total,
		PendingForms:  pending,
		ApprovedForms: approved,
		TotalBudget:   budget,
		TotalUsers:    len(users),
		Ministries:    len(ministries),
		EventTypes:    len(eventTypes),
	}
	for _, usr := range users {
		if usr.Active {
			s.ActiveUsers++
		}
	}
	for _, m := range ministries {
		if m.Active {
			s.ActiveMinistries++
		}
	}
	return s, nil
}

// FormAudit returns the audit trail of one form, oldest first.
func (u *Usecase) FormAudit(ctx context.Context, formID uint64) ([]audit.Entry, error) {
	if _, err := u.forms.GetByID(ctx, formID); err != nil {
		return nil, translateNotFound(err, "form not found")
	}
	return u.audits.ListByForm(ctx, formID)
}

// ---- ministries ----

type MinistryInput struct {
	Name        string
	PillarID    *uint64
	Description string
	Active      *bool
}

func (u *Usecase) ListMinistries(ctx context.Context) ([]ministry.Ministry, error) {
	return u.ministries.List(ctx)
}

func (u *Usecase) CreateMinistry(ctx context.Context, in MinistryInput, actor user.Actor) (*ministry.Ministry, error) {
	if err := u.checkPillar(ctx, in.PillarID); err != nil {
		return nil, err
	}
	m := &ministry.Ministry{
		Name:        in.Name,
		PillarID:    in.PillarID,
		Description: in.Description,
		Active:      in.Active == nil || *in.Active,
	}
	if err := u.ministries.Create(ctx, m); err != nil {
		return nil, translateUnique(err, "a ministry with this name already exists")
	}
	u.record(ctx, actor.ID, audit.ActionMinistryCreated, fmt.Sprintf("Created ministry: %s", m.Name))
	return m, nil
}

func (u *Usecase) UpdateMinistry(ctx context.Context, id uint64, in MinistryInput, actor user.Actor) (*ministry.Ministry, error) {
	if err := u.checkPillar(ctx, in.PillarID); err != nil {
		return nil, err
	}
	m, err := u.ministries.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "ministry not found")
	}
	m.Name = in.Name
	m.PillarID = in.PillarID
	m.Description = in.Description
	if in.Active != nil {
		m.Active = *in.Active
	}
	if err := u.ministries.Save(ctx, m); err != nil {
		return nil, translateUnique(err, "a ministry with this name already exists")
	}
	u.record(ctx, actor.ID, audit.ActionMinistryUpdated, fmt.Sprintf("Updated ministry: %s", m.Name))
	return m, nil
}

func (u *Usecase) DeleteMinistry(ctx context.Context, id uint64, actor user.Actor) error {
	m, err := u.ministries.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err, "ministry not found")
	}
	n, err := u.forms.CountByMinistry(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: cannot delete a ministry with existing forms, deactivate it instead",
			domainForm.ErrValidation)
	}
	if err := u.ministries.Delete(ctx, id); err != nil {
		return err
	}
	u.record(ctx, actor.ID, audit.ActionMinistryDeleted, fmt.Sprintf("Deleted ministry: %s", m.Name))
	return nil
}

func (u *Usecase) checkPillar(ctx context.Context, pillarID *uint64) error {
	if pillarID == nil {
		return nil
	}
	p, err := u.users.GetByID(ctx, *pillarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: unknown pillar id", domainForm.ErrValidation)
		}
		return err
	}
	if p.Role != user.RolePillar {
		return fmt.Errorf("%w: user %d is not a pillar", domainForm.ErrValidation, *pillarID)
	}
	return nil
}

// ---- event types ----

type EventTypeInput struct {
	Name   string
	Active *bool
}

func (u *Usecase) ListEventTypes(ctx context.Context) ([]ministry.EventType, error) {
	return u.eventTypes.List(ctx)
}

func (u *Usecase) CreateEventType(ctx context.Context, in EventTypeInput, actor user.Actor) (*ministry.EventType, error) {
	et := &ministry.EventType{Name: in.Name, Active: in.Active == nil || *in.Active}
	if err := u.eventTypes.Create(ctx, et); err != nil {
		return nil, translateUnique(err, "an event type with this name already exists")
	}
	u.record(ctx, actor.ID, audit.ActionEventTypeCreated, fmt.Sprintf("Created event type: %s", et.Name))
	return et, nil
}

func (u *Usecase) UpdateEventType(ctx context.Context, id uint64, in EventTypeInput, actor user.Actor) (*ministry.EventType, error) {
	et, err := u.eventTypes.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "event type not found")
	}
	et.Name = in.Name
	if in.Active != nil {
		et.Active = *in.Active
	}
	if err := u.eventTypes.Save(ctx, et); err != nil {
		return nil, translateUnique(err, "an event type with this name already exists")
	}
	u.record(ctx, actor.ID, audit.ActionEventTypeUpdated, fmt.Sprintf("Updated event type: %s", et.Name))
	return et, nil
}

func (u *Usecase) DeleteEventType(ctx context.Context, id uint64, actor user.Actor) error {
	et, err := u.eventTypes.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err, "event type not found")
	}
	if err := u.eventTypes.Delete(ctx, id); err != nil {
		return err
	}
	u.record(ctx, actor.ID, audit.ActionEventTypeDeleted, fmt.Sprintf("Deleted event type: %s", et.Name))
	return nil
}

// ---- users ----

type UserInput struct {
	FullName string
	Email    string
	Role     user.Role
	PIN      string
	Active   *bool
}

func (u *Usecase) ListUsers(ctx context.Context) ([]user.User, error) {
	return u.users.List(ctx)
}

func (u *Usecase) ListPillars(ctx context.Context) ([]user.User, error) {
	return u.users.ListPillars(ctx)
}

func (u *Usecase) CreateUser(ctx context.Context, in UserInput, actor user.Actor) (*user.User, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domainForm.ErrValidation, in.Role)
	}
	usr := &user.User{
		FullName: in.FullName,
		Email:    in.Email,
		Role:     in.Role,
		PIN:      in.PIN,
		Active:   in.Active == nil || *in.Active,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, translateUnique(err, "a user with this email already exists")
	}
	u.record(ctx, actor.ID, audit.ActionUserCreated, fmt.Sprintf("Created user: %s", usr.Email))
	return usr, nil
}

func (u *Usecase) UpdateUser(ctx context.Context, id uint64, in UserInput, actor user.Actor) (*user.User, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domainForm.ErrValidation, in.Role)
	}
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "user not found")
	}
	usr.FullName = in.FullName
	usr.Email = in.Email
	usr.Role = in.Role
	if in.PIN != "" {
		usr.PIN = in.PIN
	}
	if in.Active != nil {
		usr.Active = *in.Active
	}
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, translateUnique(err, "a user with this email already exists")
	}
	u.record(ctx, actor.ID, audit.ActionUserUpdated, fmt.Sprintf("Updated user: %s", usr.Email))
	return usr, nil
}

func (u *Usecase) SetUserPIN(ctx context.Context, id uint64, pin string, actor user.Actor) error {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err, "user not found")
	}
	usr.PIN = pin
	if err := u.users.Save(ctx, usr); err != nil {
		return err
	}
	u.record(ctx, actor.ID, audit.ActionPINChanged, fmt.Sprintf("Reset PIN for user: %s", usr.Email))
	return nil
}

func (u *Usecase) DeleteUser(ctx context.Context, id uint64, actor user.Actor) error {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err, "user not found")
	}
	n, err := u.forms.CountByLeader(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: cannot delete a user who has created forms", domainForm.ErrValidation)
	}
	if err := u.users.Delete(ctx, id); err != nil {
		return err
	}
	u.record(ctx, actor.ID, audit.ActionUserDeleted, fmt.Sprintf("Deleted user: %s", usr.Email))
	return nil
}

// ---- shared helpers ----

func (u *Usecase) record(ctx context.Context, actorID uint64, action, details string) {
	e := &audit.Entry{UserID: actorID, Action: action, Details: details}
	if err := u.audits.Append(ctx, e); err != nil {
		u.log.WithError(err).WithField("action", action).Warn("audit append failed")
	}
}

func translateNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", domainForm.ErrNotFound, msg)
	}
	return err
}

func translateUnique(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", domainForm.ErrConflict, msg)
	}
	return err
}
