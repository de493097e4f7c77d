package core

import (
	"errors"
)

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrUnknownControl = errors.New("unknown control")
	ErrEngineStage    = errors.New("operation not allowed in the current engine stage")
	ErrBackendClosed  = errors.New("renderer backend already shut down")
	ErrUnknown        = errors.New("unknown")
)
