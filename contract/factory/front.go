package factory

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/contract/ownable"
	"github.com/meverselabs/stakefarm/core/types"
)

func (cont *FactoryContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FactoryContract
}

//////////////////////////////////////////////////
// Public Writer only owner Functions
//////////////////////////////////////////////////

func (f *front) SetImplementation(cc *types.ContractContext, kind uint8, impl common.Address) error {
	return f.cont.SetImplementation(cc, Kind(kind), impl)
}

func (f *front) SetImplementationClassic(cc *types.ContractContext, impl common.Address) error {
	return f.cont.SetImplementation(cc, KindClassic, impl)
}

func (f *front) SetImplementationBoosted(cc *types.ContractContext, impl common.Address) error {
	return f.cont.SetImplementation(cc, KindBoosted, impl)
}

func (f *front) Deploy(cc *types.ContractContext, kind uint8, Args []byte) (common.Address, error) {
	return f.cont.Deploy(cc, Kind(kind), Args)
}

func (f *front) DeployClassic(cc *types.ContractContext, rewardToken common.Address, rewardPerSecond *amount.Amount, startTimestamp uint64) (common.Address, error) {
	return f.cont.DeployClassic(cc, rewardToken, rewardPerSecond, startTimestamp)
}

func (f *front) DeployBoosted(cc *types.ContractContext, rewardToken common.Address, boosterToken common.Address, rewardPerSecond *amount.Amount, startTimestamp uint64) (common.Address, error) {
	return f.cont.DeployBoosted(cc, rewardToken, boosterToken, rewardPerSecond, startTimestamp)
}

func (f *front) TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	return ownable.TransferOwnership(cc, newOwner)
}

func (f *front) RenounceOwnership(cc *types.ContractContext) error {
	return ownable.RenounceOwnership(cc)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Owner(cc *types.ContractContext) common.Address {
	return ownable.Owner(cc)
}

func (f *front) Implementation(cc *types.ContractContext, kind uint8) (common.Address, uint64) {
	return f.cont.Implementation(cc, Kind(kind))
}

func (f *front) ImplClassic(cc *types.ContractContext) common.Address {
	impl, _ := f.cont.Implementation(cc, KindClassic)
	return impl
}

func (f *front) ImplBoosted(cc *types.ContractContext) common.Address {
	impl, _ := f.cont.Implementation(cc, KindBoosted)
	return impl
}

func (f *front) DeploymentCount(cc *types.ContractContext) uint64 {
	return f.cont.DeploymentCount(cc)
}

func (f *front) Deployment(cc *types.ContractContext, index uint64) (*DeploymentRecord, error) {
	return f.cont.Deployment(cc, index)
}

func (f *front) LatestDeployment(cc *types.ContractContext) (common.Address, error) {
	return f.cont.LatestDeployment(cc)
}

func (f *front) IsDeployedThroughFactory(cc *types.ContractContext, addr common.Address) bool {
	return f.cont.IsDeployedThroughFactory(cc, addr)
}

func (f *front) DeploymentsInRange(cc *types.ContractContext, start uint64, end uint64) ([]common.Address, error) {
	return f.cont.DeploymentsInRange(cc, start, end)
}
