package service

import (
	"errors"

	"github.com/nurpe/eld-planner/internal/hos"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = hos.ErrInvalidInput
	ErrInvalidLocation = hos.ErrInvalidLocation
)
