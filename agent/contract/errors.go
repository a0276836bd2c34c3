package contract

import "errors"

var (
	ErrBackendInvoke   = errors.New("backend invoke failed")
	ErrSchemaViolation = errors.New("backend response violates schema")
	ErrValidation      = errors.New("validation failed")
	ErrUnknownCall     = errors.New("unknown call id")
)
