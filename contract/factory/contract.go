// Package factory is the registry that deploys farms from versioned blueprints
// and keeps the provenance of every deployment.
package factory

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/contract/farm"
	"github.com/meverselabs/stakefarm/contract/farm/boosted"
	"github.com/meverselabs/stakefarm/contract/farm/classic"
	"github.com/meverselabs/stakefarm/contract/ownable"
	"github.com/meverselabs/stakefarm/core/types"
)

// registry errors
var (
	ErrImplementationAlreadySet = errors.New("ImplementationAlreadySet")
	ErrImplementationNotSet     = errors.New("ImplementationNotSet")
	ErrInvalidIndexRange        = errors.New("InvalidIndexRange")
	ErrInvalidValue             = farm.ErrInvalidValue
)

type FactoryContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FactoryContract) Name() string {
	return "FarmFactory"
}

func (cont *FactoryContract) Address() common.Address {
	return cont.addr
}

func (cont *FactoryContract) Master() common.Address {
	return cont.master
}

func (cont *FactoryContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *FactoryContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FactoryContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	return ownable.SetOwner(cc, data.Owner)
}

//////////////////////////////////////////////////
// Public Writer only owner Functions
//////////////////////////////////////////////////

// SetImplementation replaces the blueprint of the kind and bumps its version.
// The zero address disables deployments of the kind.
func (cont *FactoryContract) SetImplementation(cc *types.ContractContext, kind Kind, impl common.Address) error {
	if err := ownable.OnlyOwner(cc); err != nil {
		return err
	}
	if !kind.IsValid() {
		return errors.Wrapf(ErrInvalidValue, "kind %v", uint8(kind))
	}
	current, version := cont.Implementation(cc, kind)
	if current == impl && version > 0 {
		return errors.Wrap(ErrImplementationAlreadySet, impl.String())
	}
	version++
	if impl == common.ZeroAddr {
		cc.SetContractData(makeKindKey(tagImplementation, kind), nil)
	} else {
		cc.SetContractData(makeKindKey(tagImplementation, kind), impl[:])
	}
	cc.SetContractData(makeKindKey(tagVersion, kind), bin.Uint64Bytes(version))
	cc.EmitEvent("ImplementationSet", impl, version)
	return nil
}

// Deploy clones the blueprint of the kind initialized with the args. The caller owns the new farm.
func (cont *FactoryContract) Deploy(cc *types.ContractContext, kind Kind, Args []byte) (common.Address, error) {
	if err := ownable.OnlyOwner(cc); err != nil {
		return common.ZeroAddr, err
	}
	if !kind.IsValid() {
		return common.ZeroAddr, errors.Wrapf(ErrInvalidValue, "kind %v", uint8(kind))
	}
	impl, version := cont.Implementation(cc, kind)
	if impl == common.ZeroAddr {
		return common.ZeroAddr, errors.Wrap(ErrImplementationNotSet, kind.String())
	}
	instance, err := cc.CloneContract(cc.From(), impl, Args)
	if err != nil {
		return common.ZeroAddr, err
	}

	index := cont.DeploymentCount(cc)
	bs, _, err := bin.WriterToBytes(&DeploymentRecord{
		Instance:       instance,
		Kind:           kind,
		Deployer:       cc.From(),
		Index:          index,
		Implementation: impl,
		Version:        version,
	})
	if err != nil {
		return common.ZeroAddr, err
	}
	cc.SetContractData(makeDeploymentKey(index), bs)
	cc.SetContractData(makeDeployedIndexKey(instance), bin.Uint64Bytes(index))
	cc.SetContractData([]byte{tagDeployCount}, bin.Uint64Bytes(index+1))

	cc.EmitEvent("Deployed", instance, kind)
	return instance, nil
}

func (cont *FactoryContract) DeployClassic(cc *types.ContractContext, rewardToken common.Address, rewardPerSecond *amount.Amount, startTimestamp uint64) (common.Address, error) {
	bs, _, err := bin.WriterToBytes(&classic.FarmContractConstruction{
		RewardToken:     rewardToken,
		RewardPerSecond: rewardPerSecond,
		StartTimestamp:  startTimestamp,
	})
	if err != nil {
		return common.ZeroAddr, err
	}
	return cont.Deploy(cc, KindClassic, bs)
}

func (cont *FactoryContract) DeployBoosted(cc *types.ContractContext, rewardToken common.Address, boosterToken common.Address, rewardPerSecond *amount.Amount, startTimestamp uint64) (common.Address, error) {
	bs, _, err := bin.WriterToBytes(&boosted.FarmContractConstruction{
		RewardToken:     rewardToken,
		BoosterToken:    boosterToken,
		RewardPerSecond: rewardPerSecond,
		StartTimestamp:  startTimestamp,
	})
	if err != nil {
		return common.ZeroAddr, err
	}
	return cont.Deploy(cc, KindBoosted, bs)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

// Implementation returns the blueprint of the kind and its version, zero before the first set
func (cont *FactoryContract) Implementation(cc *types.ContractContext, kind Kind) (common.Address, uint64) {
	var impl common.Address
	if bs := cc.ContractData(makeKindKey(tagImplementation, kind)); len(bs) == common.AddressLength {
		impl = common.BytesToAddress(bs)
	}
	var version uint64
	if bs := cc.ContractData(makeKindKey(tagVersion, kind)); len(bs) == 8 {
		version = bin.Uint64(bs)
	}
	return impl, version
}

func (cont *FactoryContract) DeploymentCount(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagDeployCount})
	if len(bs) == 8 {
		return bin.Uint64(bs)
	}
	return 0
}

func (cont *FactoryContract) Deployment(cc *types.ContractContext, index uint64) (*DeploymentRecord, error) {
	if index >= cont.DeploymentCount(cc) {
		return nil, errors.Wrapf(ErrInvalidIndexRange, "index %v", index)
	}
	data := &DeploymentRecord{}
	if _, err := data.ReadFrom(bytes.NewReader(cc.ContractData(makeDeploymentKey(index)))); err != nil {
		return nil, err
	}
	return data, nil
}

// LatestDeployment returns the last deployed farm or the zero address
func (cont *FactoryContract) LatestDeployment(cc *types.ContractContext) (common.Address, error) {
	count := cont.DeploymentCount(cc)
	if count == 0 {
		return common.ZeroAddr, nil
	}
	rec, err := cont.Deployment(cc, count-1)
	if err != nil {
		return common.ZeroAddr, err
	}
	return rec.Instance, nil
}

// IsDeployedThroughFactory reports whether this registry deployed the address
func (cont *FactoryContract) IsDeployedThroughFactory(cc *types.ContractContext, addr common.Address) bool {
	return len(cc.ContractData(makeDeployedIndexKey(addr))) > 0
}

// DeploymentsInRange returns the instances from start to end inclusive
func (cont *FactoryContract) DeploymentsInRange(cc *types.ContractContext, start uint64, end uint64) ([]common.Address, error) {
	if start > end || end >= cont.DeploymentCount(cc) {
		return nil, errors.Wrapf(ErrInvalidIndexRange, "%v to %v of %v", start, end, cont.DeploymentCount(cc))
	}
	addrs := make([]common.Address, 0, end-start+1)
	for i := start; i <= end; i++ {
		rec, err := cont.Deployment(cc, i)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, rec.Instance)
	}
	return addrs, nil
}
