package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidRecordID  = errors.New("invalid record id")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptySecret      = errors.New("secret envelope is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
