package types

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/pkg/errors"
)

// ContractContext is an context for the contract
type ContractContext struct {
	cont common.Address
	from common.Address
	ctx  *Context
	it   *interactor
	Exec ExecFunc
}

// LastTimestamp returns the current time of the ledger in seconds
func (cc *ContractContext) LastTimestamp() uint64 {
	return cc.ctx.LastTimestamp()
}

// From returns the caller, an account for the top level call or a contract for nested calls
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// Address returns the address of the running contract
func (cc *ContractContext) Address() common.Address {
	return cc.cont
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Data(cc.cont, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, name, value)
}

// EmitEvent records the event of the running contract
func (cc *ContractContext) EmitEvent(name string, args ...interface{}) {
	cc.ctx.EmitEvent(&Event{
		Contract: cc.cont,
		Name:     name,
		Args:     args,
	})
}

// IsContract returns is the contract
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.IsContract(addr)
}

// ContractDefine returns the define of the contract
func (cc *ContractContext) ContractDefine(addr common.Address) (*ContractDefine, error) {
	return cc.ctx.ContractDefine(addr)
}

// CloneContract creates a new contract of the implementation's class owned by the owner
// and initializes it with the args. The running contract becomes the creator.
// The creation counts as a nested call of the running one.
func (cc *ContractContext) CloneContract(owner common.Address, impl common.Address, Args []byte) (common.Address, error) {
	cd, err := cc.ctx.ContractDefine(impl)
	if err != nil {
		return common.ZeroAddr, err
	}
	it := cc.it
	if it == nil {
		it = NewInteractor(cc.ctx)
	}
	if err := it.enter(); err != nil {
		return common.ZeroAddr, err
	}
	defer it.leave()
	cont, err := cc.ctx.deploy(cc.cont, owner, cd.ClassID, Args, it)
	if err != nil {
		return common.ZeroAddr, errors.Wrap(err, "clone")
	}
	return cont.Address(), nil
}
