package tween

import (
	"errors"
	"fmt"
)

var (
	ErrMissingOperation = errors.New("tween: missing operation")
	ErrNilOutput        = errors.New("tween: output callback is nil")
	ErrNoKeyframes      = errors.New("tween: curve needs at least one keyframe")
)

// MissingOperationError reports which arithmetic operation could not be
// resolved or was not supplied. It matches ErrMissingOperation with errors.Is.
type MissingOperationError struct {
	Op   string
	Type string
}

func (e *MissingOperationError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("tween: missing %s operation", e.Op)
	}
	return fmt.Sprintf("tween: missing %s operation for %s", e.Op, e.Type)
}

func (e *MissingOperationError) Is(target error) bool {
	return target == ErrMissingOperation
}
