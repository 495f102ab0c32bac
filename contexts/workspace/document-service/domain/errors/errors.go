package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrDocumentNotFound = errors.New("document not found")
	ErrFolderNotFound   = errors.New("folder not found")
	ErrInvalidStatus    = errors.New("invalid document status")
)
