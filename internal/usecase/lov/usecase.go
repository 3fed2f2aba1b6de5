// Package lov serves the list-of-values lookups that populate frontend
// dropdowns. Unlike the admin listings these are read-only, return active
// entries only, and are open to every authenticated role.
package lov

import (
	"context"

	"ministry-budget-api/internal/domain/ministry"
)

type Usecase struct {
	ministries ministry.Repository
	eventTypes ministry.EventTypeRepository
}

func NewUsecase(ministries ministry.Repository, eventTypes ministry.EventTypeRepository) *Usecase {
	return &Usecase{ministries: ministries, eventTypes: eventTypes}
}

// OptionDTO is a dropdown entry. Description is empty for lookups that do
// not carry one.
type OptionDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (u *Usecase) Ministries(ctx context.Context) ([]OptionDTO, error) {
	ms, err := u.ministries.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OptionDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, OptionDTO{ID: m.ID, Name: m.Name, Description: m.Description})
	}
	return out, nil
}

func (u *Usecase) EventTypes(ctx context.Context) ([]OptionDTO, error) {
	ets, err := u.eventTypes.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OptionDTO, 0, len(ets))
	for _, et := range ets {
		out = append(out, OptionDTO{ID: et.ID, Name: et.Name})
	}
	return out, nil
}
