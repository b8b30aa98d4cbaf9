// Package classic is the farm that emits a single reward token.
package classic

import (
	"bytes"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/contract/farm"
	"github.com/meverselabs/stakefarm/core/types"
)

type FarmContract struct {
	addr   common.Address
	master common.Address
	core   *farm.Core
}

func (cont *FarmContract) Name() string {
	return "ClassicFarm"
}

func (cont *FarmContract) Address() common.Address {
	return cont.addr
}

func (cont *FarmContract) Master() common.Address {
	return cont.master
}

func (cont *FarmContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
	cont.core = farm.NewCore(cont)
}

func (cont *FarmContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FarmContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	return cont.core.Init(cc, cont.master, []common.Address{data.RewardToken}, data.RewardPerSecond, data.StartTimestamp)
}

// Split gives the whole reward to the single stream
func (cont *FarmContract) Split(cc *types.ContractContext, reward *amount.Amount) []*amount.Amount {
	return []*amount.Amount{reward}
}

func (cont *FarmContract) Unscale(cc *types.ContractContext, normalized []*amount.Amount) []*amount.Amount {
	return normalized
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Fund pulls the reward from the owner and extends the end of the farm
func (cont *FarmContract) Fund(cc *types.ContractContext, am *amount.Amount) error {
	if err := cont.core.Fund(cc, []*amount.Amount{am}); err != nil {
		return err
	}
	cc.EmitEvent("Funded", cc.From(), am)
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *FarmContract) RewardToken(cc *types.ContractContext) common.Address {
	return cont.core.Token(cc, 0)
}

func (cont *FarmContract) Pending(cc *types.ContractContext, pid uint64, user common.Address) (*amount.Amount, error) {
	ams, err := cont.core.Pending(cc, pid, user)
	if err != nil {
		return nil, err
	}
	return ams[0], nil
}

func (cont *FarmContract) TotalPending(cc *types.ContractContext) *amount.Amount {
	return cont.core.TotalPending(cc)[0]
}

func (cont *FarmContract) TotalRewards(cc *types.ContractContext) *amount.Amount {
	return cont.core.TotalFunded(cc, 0)
}

func (cont *FarmContract) PaidOut(cc *types.ContractContext) *amount.Amount {
	return cont.core.PaidOut(cc, 0)
}
