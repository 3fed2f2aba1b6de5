package form

import "errors"

var (
	ErrNotFound     = errors.New("form not found")
	ErrForbidden    = errors.New("permission denied")
	ErrInvalidStage = errors.New("form is not pending the required approval stage")
	ErrValidation   = errors.New("invalid request")
	ErrConflict     = errors.New("conflicting concurrent update")
)
