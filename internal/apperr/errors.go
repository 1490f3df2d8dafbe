package apperr

import "errors"

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrConformance  = errors.New("does not conform")
	ErrBadDocument  = errors.New("bad document")
)
