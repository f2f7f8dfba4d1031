package util

import "errors"

var (
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrAttemptFinished  = errors.New("attempt already finished")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidLevel     = errors.New("invalid question level")
)
