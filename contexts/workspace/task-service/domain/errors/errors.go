package errors

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
)
