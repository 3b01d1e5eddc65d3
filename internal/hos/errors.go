package hos

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidLocation = errors.New("invalid location")
)
