package types

import (
	"github.com/meverselabs/stakefarm/common"
)

// Event is an observable record emitted by a contract
type Event struct {
	Index    uint64
	Contract common.Address
	Name     string
	Args     []interface{}
}

// Arg returns the i-th argument or nil
func (e *Event) Arg(i int) interface{} {
	if i < 0 || i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}
