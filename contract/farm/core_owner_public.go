package farm

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/contract/ownable"
	"github.com/meverselabs/stakefarm/contract/util"
	"github.com/meverselabs/stakefarm/core/types"
	"github.com/pkg/errors"
)

//////////////////////////////////////////////////
// Public Writer only owner Functions
//////////////////////////////////////////////////

// Add appends the pool of the stake token. withUpdate synchronizes the existing pools
// before the total allocation point changes.
func (c *Core) Add(cc *types.ContractContext, allocPoint uint64, stakeToken common.Address, withUpdate bool) (uint64, error) {
	if err := ownable.OnlyOwner(cc); err != nil {
		return 0, err
	}
	if stakeToken == common.ZeroAddr {
		return 0, errors.Wrap(ErrInvalidValue, "zero stake token")
	}
	if len(cc.ContractData(makeStakeTokenKey(stakeToken))) > 0 {
		return 0, errors.Wrap(ErrAlreadyAdded, stakeToken.String())
	}
	totalAllocPoint, err := addAllocPoint(c.TotalAllocPoint(cc), allocPoint)
	if err != nil {
		return 0, err
	}
	if withUpdate {
		if err := c.MassUpdatePools(cc); err != nil {
			return 0, err
		}
	}

	lastRewardTime := c.lastTimestamp(cc)
	if start := c.StartTimestamp(cc); lastRewardTime < start {
		lastRewardTime = start
	}
	acc := make([]*amount.Amount, c.Streams(cc))
	for i := range acc {
		acc[i] = amount.Zero()
	}
	pid := c.PoolLength(cc)
	cc.SetContractData([]byte{tagPoolLength}, bin.Uint64Bytes(pid+1))
	if err := c.setPoolInfo(cc, pid, &PoolInfo{
		StakeToken:     stakeToken,
		AllocPoint:     allocPoint,
		LastRewardTime: lastRewardTime,
		AccPerShare:    acc,
		TotalDeposited: amount.Zero(),
	}); err != nil {
		return 0, err
	}
	cc.SetContractData(makeStakeTokenKey(stakeToken), bin.Uint64Bytes(pid))
	c.setTotalAllocPoint(cc, totalAllocPoint)

	cc.EmitEvent("PoolAdded", pid, stakeToken, allocPoint)
	return pid, nil
}

// Set changes the allocation point of the pool
func (c *Core) Set(cc *types.ContractContext, pid uint64, allocPoint uint64, withUpdate bool) error {
	if err := ownable.OnlyOwner(cc); err != nil {
		return err
	}
	if _, err := c._poolInfo(cc, pid); err != nil {
		return err
	}
	if withUpdate {
		if err := c.MassUpdatePools(cc); err != nil {
			return err
		}
	}
	pool, err := c._poolInfo(cc, pid)
	if err != nil {
		return err
	}
	totalAllocPoint, err := addAllocPoint(c.TotalAllocPoint(cc)-pool.AllocPoint, allocPoint)
	if err != nil {
		return err
	}
	c.setTotalAllocPoint(cc, totalAllocPoint)
	pool.AllocPoint = allocPoint
	if err := c.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}

	cc.EmitEvent("PoolSet", pid, allocPoint)
	return nil
}

// Fund pulls the amount of every stream from the caller and extends the end of
// the farm to start + funded rewards / reward per second.
// The variants validate the proportion of the streams before funding.
func (c *Core) Fund(cc *types.ContractContext, ams []*amount.Amount) error {
	if err := c.CheckFundable(cc); err != nil {
		return err
	}
	if len(ams) != c.Streams(cc) {
		return errors.Wrapf(ErrInvalidValue, "%v amounts for %v streams", len(ams), c.Streams(cc))
	}
	if ams[0] == nil || !ams[0].IsPlus() {
		return errors.Wrap(ErrInvalidValue, "fund amount")
	}
	for i, am := range ams {
		if am == nil || am.IsMinus() {
			return errors.Wrapf(ErrInvalidValue, "fund amount of stream %v", i)
		}
		if am.IsZero() {
			continue
		}
		if err := util.SafeTransferFrom(cc, c.Token(cc, i), cc.From(), cc.Address(), am); err != nil {
			return err
		}
		cc.SetContractData(makeStreamKey(tagTotalFunded, i), c.TotalFunded(cc, i).Add(am).Bytes())
	}

	runway := c.TotalFunded(cc, 0).Div(c.RewardPerSecond(cc))
	end := c.StartTimestamp(cc) + runway.Uint64()
	cc.SetContractData([]byte{tagEndTimestamp}, bin.Uint64Bytes(end))
	return nil
}

// CheckFundable fails when the caller is not the owner or the farm is closed
func (c *Core) CheckFundable(cc *types.ContractContext) error {
	if err := ownable.OnlyOwner(cc); err != nil {
		return err
	}
	if now, end := cc.LastTimestamp(), c.EndTimestamp(cc); now >= end {
		return errors.Wrapf(ErrFarmClosed, "now %v end %v", now, end)
	}
	return nil
}

func (c *Core) TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	return ownable.TransferOwnership(cc, newOwner)
}

func (c *Core) RenounceOwnership(cc *types.ContractContext) error {
	return ownable.RenounceOwnership(cc)
}
