package boosted

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/contract/farm"
	"github.com/meverselabs/stakefarm/core/types"
)

func (cont *FarmContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FarmContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) Deposit(cc *types.ContractContext, pid uint64, am *amount.Amount) error {
	return f.cont.core.Deposit(cc, pid, am)
}

func (f *front) Withdraw(cc *types.ContractContext, pid uint64, am *amount.Amount) error {
	return f.cont.core.Withdraw(cc, pid, am)
}

func (f *front) EmergencyWithdraw(cc *types.ContractContext, pid uint64) error {
	return f.cont.core.EmergencyWithdraw(cc, pid)
}

func (f *front) UpdatePool(cc *types.ContractContext, pid uint64) error {
	return f.cont.core.UpdatePool(cc, pid)
}

func (f *front) MassUpdatePools(cc *types.ContractContext) error {
	return f.cont.core.MassUpdatePools(cc)
}

//////////////////////////////////////////////////
// Public Writer only owner Functions
//////////////////////////////////////////////////

func (f *front) Fund(cc *types.ContractContext, reward *amount.Amount, booster *amount.Amount) error {
	return f.cont.Fund(cc, reward, booster)
}

func (f *front) Add(cc *types.ContractContext, allocPoint uint64, stakeToken common.Address, withUpdate bool) (uint64, error) {
	return f.cont.core.Add(cc, allocPoint, stakeToken, withUpdate)
}

func (f *front) Set(cc *types.ContractContext, pid uint64, allocPoint uint64, withUpdate bool) error {
	return f.cont.core.Set(cc, pid, allocPoint, withUpdate)
}

func (f *front) TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	return f.cont.core.TransferOwnership(cc, newOwner)
}

func (f *front) RenounceOwnership(cc *types.ContractContext) error {
	return f.cont.core.RenounceOwnership(cc)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Owner(cc *types.ContractContext) common.Address {
	return f.cont.core.Owner(cc)
}

func (f *front) RewardToken(cc *types.ContractContext) common.Address {
	return f.cont.RewardToken(cc)
}

func (f *front) RewardPerSecond(cc *types.ContractContext) *amount.Amount {
	return f.cont.core.RewardPerSecond(cc)
}

func (f *front) StartTimestamp(cc *types.ContractContext) uint64 {
	return f.cont.core.StartTimestamp(cc)
}

func (f *front) EndTimestamp(cc *types.ContractContext) uint64 {
	return f.cont.core.EndTimestamp(cc)
}

func (f *front) TotalAllocPoint(cc *types.ContractContext) uint64 {
	return f.cont.core.TotalAllocPoint(cc)
}

func (f *front) PoolLength(cc *types.ContractContext) uint64 {
	return f.cont.core.PoolLength(cc)
}

func (f *front) PoolInfo(cc *types.ContractContext, pid uint64) (*farm.PoolInfo, error) {
	return f.cont.core.PoolInfo(cc, pid)
}

func (f *front) Pools(cc *types.ContractContext) ([]*farm.PoolInfo, error) {
	return f.cont.core.Pools(cc)
}

func (f *front) UserInfo(cc *types.ContractContext, pid uint64, user common.Address) (*farm.UserInfo, error) {
	return f.cont.core.UserInfo(cc, pid, user)
}

func (f *front) Deposited(cc *types.ContractContext, pid uint64, user common.Address) (*amount.Amount, error) {
	return f.cont.core.Deposited(cc, pid, user)
}

func (f *front) Pending(cc *types.ContractContext, pid uint64, user common.Address) (*amount.Amount, *amount.Amount, error) {
	return f.cont.Pending(cc, pid, user)
}

func (f *front) TotalPending(cc *types.ContractContext) (*amount.Amount, *amount.Amount) {
	return f.cont.TotalPending(cc)
}

func (f *front) TotalRewards(cc *types.ContractContext) *amount.Amount {
	return f.cont.TotalRewards(cc)
}

func (f *front) TotalBooster(cc *types.ContractContext) *amount.Amount {
	return f.cont.TotalBooster(cc)
}

func (f *front) PaidOut(cc *types.ContractContext) (*amount.Amount, *amount.Amount) {
	return f.cont.PaidOut(cc)
}

func (f *front) BoosterToken(cc *types.ContractContext) common.Address {
	return f.cont.BoosterToken(cc)
}

func (f *front) DecimalEqReward(cc *types.ContractContext) *amount.Amount {
	return f.cont.DecimalEqReward(cc)
}

func (f *front) DecimalEqBooster(cc *types.ContractContext) *amount.Amount {
	return f.cont.DecimalEqBooster(cc)
}

func (f *front) Ratio(cc *types.ContractContext) *amount.Amount {
	return f.cont.Ratio(cc)
}
