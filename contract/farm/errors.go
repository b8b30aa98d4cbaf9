package farm

import "github.com/pkg/errors"

// farm errors
var (
	ErrUnauthorizedWithdrawal = errors.New("UnauthorizedWithdrawal")
	ErrFarmClosed             = errors.New("FarmClosed")
	ErrAlreadyAdded           = errors.New("AlreadyAdded")
	ErrInvalidValue           = errors.New("InvalidValue")
)
