package assistant

import "errors"

var (
	ErrEmptyInput = errors.New("message must not be empty")
	ErrBusy       = errors.New("assistant is already processing a request")
)
