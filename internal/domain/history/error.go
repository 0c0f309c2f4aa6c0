package history

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidCount   = errors.New("count must be a positive integer")
)
