package types

import "errors"

// runtime errors
var (
	ErrNotExistContract  = errors.New("not exist contract")
	ErrExistContractType = errors.New("exist contract type")
	ErrInvalidClassID    = errors.New("invalid class id")
	ErrExistAddress      = errors.New("exist address")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrCallDepthExceeded = errors.New("call depth exceeded")
	ErrMethodNotFound    = errors.New("method not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDirtyContext      = errors.New("context has uncommitted snapshots")
)
