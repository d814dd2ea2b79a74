package colony

import "errors"

var (
	ErrUnknownGroup          = errors.New("unknown origin group")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrMaxLevel              = errors.New("origin group at max level")
	ErrNoCapacity            = errors.New("origin group at capacity")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrUnknownPlan           = errors.New("unknown mission plan")
	ErrInvalidState          = errors.New("invalid colony state")
)
