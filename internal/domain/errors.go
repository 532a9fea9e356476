package domain

import "errors"

var (
	ErrFocusNotFound      = errors.New("focus not found")
	ErrLoopNotFound       = errors.New("loop not found")
	ErrThreadNotFound     = errors.New("thread not found")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidQueue       = errors.New("invalid queue")
	ErrInvalidThreadMode  = errors.New("invalid thread mode")
	ErrInvalidClosureType = errors.New("invalid closure type")
	ErrInvalidLoadLevel   = errors.New("invalid load level")
	ErrInvalidDepth       = errors.New("invalid prediction depth")
	ErrInvalidPermission  = errors.New("invalid notification permission")
	ErrEmptyField         = errors.New("required field is empty")
)
