package types

import (
	"github.com/meverselabs/stakefarm/common"
)

// Contract defines the functions every hosted contract provides
type Contract interface {
	Address() common.Address
	Master() common.Address
	Init(addr common.Address, master common.Address)
	OnCreate(cc *ContractContext, Args []byte) error
	Front() interface{}
}
