package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrTemplateNotFound = errors.New("template not found")
)
